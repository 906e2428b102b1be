package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLock(t *testing.T, ttl, wait time.Duration) (*RedisLock, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return NewRedisLock(rds, ttl, wait), mr
}

func TestRedisLock_AcquireRelease(t *testing.T) {
	lock, mr := newRedisLock(t, time.Second, 100*time.Millisecond)
	ctx := context.Background()

	release, err := lock.Acquire(ctx, 7)
	require.NoError(t, err)
	assert.True(t, mr.Exists(lockKey(7)))

	_, err = lock.Acquire(ctx, 7)
	assert.ErrorIs(t, err, ErrLockTimeout)

	// 不同用户互不影响
	releaseOther, err := lock.Acquire(ctx, 8)
	require.NoError(t, err)
	releaseOther()

	release()
	assert.False(t, mr.Exists(lockKey(7)))

	release, err = lock.Acquire(ctx, 7)
	require.NoError(t, err)
	release()
}

func TestRedisLock_ReleaseKeepsForeignToken(t *testing.T) {
	lock, mr := newRedisLock(t, time.Second, 50*time.Millisecond)

	release, err := lock.Acquire(context.Background(), 1)
	require.NoError(t, err)

	// 锁过期后被别人持有，旧的 release 不能删掉它
	require.NoError(t, mr.Set(lockKey(1), "someone-else"))
	release()

	got, err := mr.Get(lockKey(1))
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRedisLock_ContextCanceled(t *testing.T) {
	lock, _ := newRedisLock(t, time.Second, time.Second)

	release, err := lock.Acquire(context.Background(), 3)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = lock.Acquire(ctx, 3)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocalLock_Serializes(t *testing.T) {
	lock := NewLocalLock(2 * time.Second)

	var (
		wg      sync.WaitGroup
		inside  int32
		maxSeen int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := lock.Acquire(context.Background(), 42)
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxSeen)
				if n <= m || atomic.CompareAndSwapInt32(&maxSeen, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxSeen)
}

func TestLocalLock_Timeout(t *testing.T) {
	lock := NewLocalLock(30 * time.Millisecond)
	release, err := lock.Acquire(context.Background(), 1)
	require.NoError(t, err)

	_, err = lock.Acquire(context.Background(), 1)
	assert.ErrorIs(t, err, ErrLockTimeout)

	release()
	release, err = lock.Acquire(context.Background(), 1)
	require.NoError(t, err)
	release()
}
