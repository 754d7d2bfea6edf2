package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrBusy is returned when a table's lease cannot be acquired in time.
// The caller may retry; no mutation has taken place.
var ErrBusy = errors.New("table is busy")

// Locker serializes the read-modify-write cycle per table. Cycles on the
// same table run one at a time; cycles on different tables run in parallel.
type Locker struct {
	mu     sync.Mutex
	leases map[string]chan struct{}
}

// NewLocker returns an empty Locker
func NewLocker() *Locker {
	return &Locker{
		leases: make(map[string]chan struct{}),
	}
}

// Acquire obtains the exclusive lease for the table, waiting up to wait.
// The returned release function must be called on every exit path.
func (l *Locker) Acquire(ctx context.Context, tableID string, wait time.Duration) (func(), error) {
	l.mu.Lock()
	lease, ok := l.leases[tableID]
	if !ok {
		lease = make(chan struct{}, 1)
		l.leases[tableID] = lease
	}
	l.mu.Unlock()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case lease <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-lease
			})
		}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, ErrBusy
	}
}

// Forget drops the lease entry for a deleted table
func (l *Locker) Forget(tableID string) {
	l.mu.Lock()
	delete(l.leases, tableID)
	l.mu.Unlock()
}
