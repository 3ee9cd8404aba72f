package catalog

import (
	"context"
	"sync"
)

// MemoryLocker is an in-process Locker.
type MemoryLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryLocker creates an empty MemoryLocker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{held: make(map[string]struct{})}
}

func (l *MemoryLocker) TryLock(_ context.Context, key string) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.held[key]; busy {
		return nil, false, nil
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, true, nil
}

// ChainLocker takes every lock in order and succeeds only if all succeed.
// Locks already taken are released when a later one fails.
type ChainLocker []Locker

func (c ChainLocker) TryLock(ctx context.Context, key string) (func(), bool, error) {
	unlocks := make([]func(), 0, len(c))
	release := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}

	for _, l := range c {
		unlock, ok, err := l.TryLock(ctx, key)
		if err != nil || !ok {
			release()
			return nil, false, err
		}
		unlocks = append(unlocks, unlock)
	}
	return release, true, nil
}
