package accounts

import (
	"context"
	"sync"
	"time"
)

// DefaultLockPollInterval is how often a waiting caller rechecks the lock.
const DefaultLockPollInterval = time.Second

// StoreLock serializes mutating workflows against the on-disk store. It is
// coarse: one lock for the whole store, so a record write and its index
// update always commit as a unit relative to other workflows.
//
// Acquire is a cooperative wait, not a spin loop; a blocked caller sleeps for
// the poll interval between attempts and gives up when its context expires.
type StoreLock struct {
	mu   sync.Mutex
	held bool
	poll time.Duration
}

// NewStoreLock builds a lock with the given poll interval. Zero or negative
// values fall back to DefaultLockPollInterval.
func NewStoreLock(poll time.Duration) *StoreLock {
	if poll <= 0 {
		poll = DefaultLockPollInterval
	}
	return &StoreLock{poll: poll}
}

// Acquire blocks until the lock is free or ctx is done. It returns
// ErrStoreBusy when the wait is abandoned.
func (l *StoreLock) Acquire(ctx context.Context) error {
	for {
		if l.tryAcquire() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ErrStoreBusy
		case <-time.After(l.poll):
		}
	}
}

// Release marks the lock free unconditionally.
func (l *StoreLock) Release() {
	l.mu.Lock()
	l.held = false
	l.mu.Unlock()
}

// IsHeld reports the current state, for diagnostics only; the answer can be
// stale by the time the caller acts on it.
func (l *StoreLock) IsHeld() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}

func (l *StoreLock) tryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held {
		return false
	}

	l.held = true
	return true
}
