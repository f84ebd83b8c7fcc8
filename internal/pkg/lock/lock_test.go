package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 31, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLocker()
	l.now = func() time.Time { return now }

	release, err := l.Acquire(ctx, "period-1", time.Minute)
	require.NoError(t, err)

	_, err = l.Acquire(ctx, "period-1", time.Minute)
	assert.ErrorIs(t, err, ErrLocked)

	// other keys are independent
	_, err = l.Acquire(ctx, "period-2", time.Minute)
	assert.NoError(t, err)

	require.NoError(t, release(ctx))
	release2, err := l.Acquire(ctx, "period-1", time.Minute)
	require.NoError(t, err)

	// a stale release must not drop the new holder's lock
	require.NoError(t, release(ctx))
	_, err = l.Acquire(ctx, "period-1", time.Minute)
	assert.ErrorIs(t, err, ErrLocked)
	require.NoError(t, release2(ctx))
}

func TestMemoryLocker_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 31, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLocker()
	l.now = func() time.Time { return now }

	_, err := l.Acquire(ctx, "period-1", time.Minute)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = l.Acquire(ctx, "period-1", time.Minute)
	assert.NoError(t, err)
}

func TestRedisLocker(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	l := NewRedisLockerWithClient(client, "test:lock:")
	key := "period-" + time.Now().Format("150405.000000")

	release, err := l.Acquire(ctx, key, 5*time.Second)
	require.NoError(t, err)

	_, err = l.Acquire(ctx, key, 5*time.Second)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, release(ctx))
	release, err = l.Acquire(ctx, key, 5*time.Second)
	require.NoError(t, err)
	require.NoError(t, release(ctx))
}
