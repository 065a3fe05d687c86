package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLockKey = "cron:scheduled_withdraws:lock"

func TestSweepLock_TryAcquire_Free(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewSweepLock(client)
	ctx := context.Background()

	ok, err := lock.TryAcquire(ctx, testLockKey, time.Minute, "runner-1")
	require.NoError(t, err)
	assert.True(t, ok, "free lock should be acquired")

	holder, err := s.Get(testLockKey)
	require.NoError(t, err)
	assert.Equal(t, "runner-1", holder, "holder identity recorded")
}

func TestSweepLock_TryAcquire_Held(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewSweepLock(client)
	ctx := context.Background()

	ok, err := lock.TryAcquire(ctx, testLockKey, time.Minute, "runner-1")
	require.NoError(t, err)
	require.True(t, ok)

	// Second instance is denied, without error.
	ok, err = lock.TryAcquire(ctx, testLockKey, time.Minute, "runner-2")
	require.NoError(t, err)
	assert.False(t, ok, "held lock should deny a second holder")
}

func TestSweepLock_Release_AllowsReacquire(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewSweepLock(client)
	ctx := context.Background()

	ok, err := lock.TryAcquire(ctx, testLockKey, time.Minute, "runner-1")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, lock.Release(ctx, testLockKey))

	ok, err = lock.TryAcquire(ctx, testLockKey, time.Minute, "runner-2")
	require.NoError(t, err)
	assert.True(t, ok, "released lock should be acquirable again")
}

func TestSweepLock_TTLExpiry_SelfHeals(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewSweepLock(client)
	ctx := context.Background()

	ok, err := lock.TryAcquire(ctx, testLockKey, 30*time.Second, "crashed-runner")
	require.NoError(t, err)
	require.True(t, ok)

	// Holder crashes without releasing; TTL is the safety net.
	s.FastForward(31 * time.Second)

	ok, err = lock.TryAcquire(ctx, testLockKey, 30*time.Second, "runner-2")
	require.NoError(t, err)
	assert.True(t, ok, "expired lock should self-heal")
}

func TestSweepLock_Release_MissingKey(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewSweepLock(client)

	assert.NoError(t, lock.Release(context.Background(), testLockKey))
}
