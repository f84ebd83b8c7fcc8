package lock

import (
	"context"
	"errors"
	"time"
)

// ErrLocked is returned when another holder owns the key.
var ErrLocked = errors.New("lock is held by another process")

// Release gives up a lock. Releasing a lock that already expired is a no-op.
type Release func(ctx context.Context) error

// Locker hands out short-lived exclusive locks keyed by name.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error)
}
