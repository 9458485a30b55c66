package ledger

import (
	"bytes"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// lockRegistry serializes balance mutations per envelope.
//
// Locks for multiple envelopes are always acquired in ascending id
// order so that two concurrent transfers between the same envelope pair
// cannot deadlock.
type lockRegistry struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// get returns the lock for an envelope, creating it on first use.
func (r *lockRegistry) get(id uuid.UUID) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}

	return lock
}

// lock acquires the locks for all given envelopes in ascending id order
// and returns the function releasing them again.
func (r *lockRegistry) lock(ids ...uuid.UUID) func() {
	ids = slices.Clone(ids)
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	ids = slices.Compact(ids)

	locked := make([]*sync.Mutex, 0, len(ids))
	for _, id := range ids {
		lock := r.get(id)
		lock.Lock()
		locked = append(locked, lock)
	}

	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].Unlock()
		}
	}
}
