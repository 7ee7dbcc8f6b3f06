package internal

import (
	"fmt"
	"sync"
	"sync/atomic"
)

type DuplicatePendingIdError struct {
	Id uint64
}

func (e *DuplicatePendingIdError) Error() string {
	return fmt.Sprintf("Attempted to create pending entry with duplicate ID %d", e.Id)
}

type MissingPendingIdError struct {
	Id uint64
}

func (e *MissingPendingIdError) Error() string {
	return fmt.Sprintf("Missing pending entry with id=%d", e.Id)
}

type TooManyPendingError struct {
	MaxPending int
}

func (e *TooManyPendingError) Error() string {
	return fmt.Sprintf("Too many outstanding entries (max %d) - cannot create new entry", e.MaxPending)
}

// PendingStore hands out sequence numbers and keeps whatever is waiting on
// them until it is resolved exactly once.
type PendingStore[T any] struct {
	// MaxPending <= 0 means unlimited.
	MaxPending int

	nextId atomic.Uint64

	mut_pending sync.RWMutex
	pending     map[uint64]T
}

func CreatePendingStore[T any](maxPending int) *PendingStore[T] {
	return &PendingStore[T]{
		MaxPending:  maxPending,
		nextId:      atomic.Uint64{},
		mut_pending: sync.RWMutex{},
		pending:     make(map[uint64]T),
	}
}

func (store *PendingStore[T]) GetNextId() uint64 {
	return store.nextId.Add(1)
}

func (store *PendingStore[T]) Has(id uint64) bool {
	store.mut_pending.RLock()
	defer store.mut_pending.RUnlock()

	_, has := store.pending[id]
	return has
}

func (store *PendingStore[T]) Len() int {
	store.mut_pending.RLock()
	defer store.mut_pending.RUnlock()

	return len(store.pending)
}

func (store *PendingStore[T]) Create(id uint64, entry T) error {
	store.mut_pending.Lock()
	defer store.mut_pending.Unlock()

	if _, has := store.pending[id]; has {
		return &DuplicatePendingIdError{Id: id}
	}

	if store.MaxPending > 0 && len(store.pending) >= store.MaxPending {
		return &TooManyPendingError{MaxPending: store.MaxPending}
	}

	store.pending[id] = entry
	return nil
}

// Resolve removes and returns the entry. A second Resolve for the same id
// fails with MissingPendingIdError.
func (store *PendingStore[T]) Resolve(id uint64) (T, error) {
	store.mut_pending.Lock()
	defer store.mut_pending.Unlock()

	entry, has := store.pending[id]
	if !has {
		var zero T
		return zero, &MissingPendingIdError{Id: id}
	}

	delete(store.pending, id)
	return entry, nil
}

// Drain removes every entry and returns them in no particular order.
func (store *PendingStore[T]) Drain() []T {
	store.mut_pending.Lock()
	defer store.mut_pending.Unlock()

	entries := make([]T, 0, len(store.pending))
	for id, entry := range store.pending {
		entries = append(entries, entry)
		delete(store.pending, id)
	}
	return entries
}
