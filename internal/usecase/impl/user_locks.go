package impl

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// UserLocks serializes state-changing operations per user. Synchronization,
// conflict resolution and data clearing share one instance.
type UserLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*userLock
}

type userLock struct {
	ch   chan struct{}
	refs int
}

// NewUserLocks creates an empty lock table.
func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[uuid.UUID]*userLock)}
}

// Lock blocks until the user's lock is held or ctx is done.
// The returned function releases the lock.
func (l *UserLocks) Lock(ctx context.Context, userID uuid.UUID) (func(), error) {
	l.mu.Lock()
	entry, ok := l.locks[userID]
	if !ok {
		entry = &userLock{ch: make(chan struct{}, 1)}
		l.locks[userID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.ch <- struct{}{}:
		return func() {
			<-entry.ch
			l.release(userID, entry)
		}, nil
	case <-ctx.Done():
		l.release(userID, entry)

		return nil, ctx.Err()
	}
}

func (l *UserLocks) release(userID uuid.UUID, entry *userLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, userID)
	}
}
