package service

import "time"

// Clock 当前时间，测试中可替换
type Clock func() time.Time

func SystemClock() Clock {
	return time.Now
}

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
