package cache

import (
	"Landmark/config"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
)

var ErrLockTimeout = errors.New("acquire user lock timeout")

// UserLock 串行化同一用户的积分变更
type UserLock interface {
	Acquire(ctx context.Context, userID uint64) (release func(), err error)
}

const (
	LockDriverRedis = "redis"
	LockDriverLocal = "local"
)

// NewUserLock 多实例部署必须使用 redis
func NewUserLock(rds *redis.Client, conf *config.Config) UserLock {
	if conf.Points.LockDriver == LockDriverLocal {
		return NewLocalLock(conf.Points.LockWait)
	}
	return NewRedisLock(rds, conf.Points.LockTTL, conf.Points.LockWait)
}

func lockKey(userID uint64) string {
	return fmt.Sprintf("points:lock:user:%d", userID)
}

// 只删除自己持有的锁
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLock struct {
	redis *redis.Client
	ttl   time.Duration
	wait  time.Duration
	retry time.Duration
}

func NewRedisLock(rds *redis.Client, ttl, wait time.Duration) *RedisLock {
	return &RedisLock{redis: rds, ttl: ttl, wait: wait, retry: 20 * time.Millisecond}
}

func (l *RedisLock) Acquire(ctx context.Context, userID uint64) (func(), error) {
	key := lockKey(userID)
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.redis.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				// 请求可能已取消，释放锁不能依赖它
				_ = releaseScript.Run(context.Background(), l.redis, []string{key}, token).Err()
			}, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}
}

// LocalLock 单实例进程内锁
type LocalLock struct {
	locks cmap.ConcurrentMap[string, chan struct{}]
	wait  time.Duration
}

func NewLocalLock(wait time.Duration) *LocalLock {
	return &LocalLock{locks: cmap.New[chan struct{}](), wait: wait}
}

func (l *LocalLock) Acquire(ctx context.Context, userID uint64) (func(), error) {
	sem := l.locks.Upsert(lockKey(userID), nil, func(exist bool, valueInMap chan struct{}, _ chan struct{}) chan struct{} {
		if exist {
			return valueInMap
		}
		return make(chan struct{}, 1)
	})

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-timer.C:
		return nil, ErrLockTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
