// Package lock provides per-user mutual exclusion for point mutations.
package lock

import "sync"

type entry struct {
	mu   sync.RWMutex
	refs int
}

// Registry hands out one lock per user id. An entry lives while at least one
// caller holds or waits for it and is dropped when the last one releases, so
// the table only grows with the number of users in flight.
type Registry struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

func NewRegistry() *Registry {
	return &Registry{locks: make(map[int64]*entry)}
}

// Lock blocks until the exclusive lock for userID is held and returns its
// release func. The release func must be called exactly once.
func (r *Registry) Lock(userID int64) (unlock func()) {
	e := r.acquire(userID)
	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		r.release(userID, e)
	}
}

// RLock is the shared-mode counterpart of Lock. Readers exclude writers of the
// same user but not each other.
func (r *Registry) RLock(userID int64) (unlock func()) {
	e := r.acquire(userID)
	e.mu.RLock()
	return func() {
		e.mu.RUnlock()
		r.release(userID, e)
	}
}

// Len reports how many user locks are currently referenced.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.locks)
}

func (r *Registry) acquire(userID int64) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.locks[userID]
	if !ok {
		e = &entry{}
		r.locks[userID] = e
	}
	e.refs++
	return e
}

func (r *Registry) release(userID int64, e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(r.locks, userID)
	}
}
