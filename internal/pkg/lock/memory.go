package lock

import (
	"context"
	"sync"
	"time"
)

// MemoryLocker is a single-process Locker used when Redis is not configured.
type MemoryLocker struct {
	mu    sync.Mutex
	held  map[string]memoryLease
	now   func() time.Time
	token uint64
}

type memoryLease struct {
	token     uint64
	expiresAt time.Time
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{held: make(map[string]memoryLease), now: time.Now}
}

// Acquire implements Locker.
func (l *MemoryLocker) Acquire(_ context.Context, key string, ttl time.Duration) (Release, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if lease, ok := l.held[key]; ok && now.Before(lease.expiresAt) {
		return nil, ErrLocked
	}

	l.token++
	token := l.token
	l.held[key] = memoryLease{token: token, expiresAt: now.Add(ttl)}

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if lease, ok := l.held[key]; ok && lease.token == token {
			delete(l.held, key)
		}
		return nil
	}, nil
}

var _ Locker = (*MemoryLocker)(nil)
