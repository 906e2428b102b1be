package config

import "time"

// Points 积分账户相关配置
type Points struct {
	LockTTL    time.Duration `json:"lock_ttl" yaml:"lock_ttl"`       // 用户锁过期时间
	LockWait   time.Duration `json:"lock_wait" yaml:"lock_wait"`     // 获取锁最长等待
	LockDriver string        `json:"lock_driver" yaml:"lock_driver"` // redis(默认) 或 local，local 仅适用于单实例
}
