package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SweepLock implements ports.DistributedLock using Redis SET NX with a TTL.
// The set-if-absent-with-expiry operation is atomic, so there is no
// check-then-set window between instances. If a holder crashes without
// releasing, the TTL expires the key and the next tick can proceed.
type SweepLock struct {
	client *goredis.Client
}

// NewSweepLock creates a Redis-backed distributed lock.
func NewSweepLock(client *goredis.Client) *SweepLock {
	return &SweepLock{client: client}
}

// TryAcquire attempts to take the lock. It is non-blocking: false means
// another holder currently owns the key, which is an expected contention
// signal rather than an error.
func (l *SweepLock) TryAcquire(ctx context.Context, key string, ttl time.Duration, holder string) (bool, error) {
	result, err := l.client.SetArgs(ctx, key, holder, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — lock is held elsewhere
			return false, nil
		}
		return false, fmt.Errorf("redis lock acquire: %w", err)
	}
	return result == "OK", nil
}

// Release deletes the lock key. Releasing a lock that already expired is a
// no-op.
func (l *SweepLock) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis lock release: %w", err)
	}
	return nil
}
