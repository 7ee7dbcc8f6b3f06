package internal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingStoreResolvesOnce(t *testing.T) {
	store := CreatePendingStore[string](0)
	id := store.GetNextId()

	require.NoError(t, store.Create(id, "a"))
	assert.True(t, store.Has(id))

	var dup *DuplicatePendingIdError
	require.ErrorAs(t, store.Create(id, "b"), &dup)

	v, err := store.Resolve(id)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	_, err = store.Resolve(id)
	var missing *MissingPendingIdError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, id, missing.Id)
}

func TestPendingStoreLimit(t *testing.T) {
	store := CreatePendingStore[int](1)
	require.NoError(t, store.Create(store.GetNextId(), 1))

	var tooMany *TooManyPendingError
	require.ErrorAs(t, store.Create(store.GetNextId(), 2), &tooMany)
}

func TestPendingStoreDrain(t *testing.T) {
	store := CreatePendingStore[int](0)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Create(store.GetNextId(), i))
	}

	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, store.Drain())
	assert.Equal(t, 0, store.Len())
}

func TestPendingStoreIdsAreUnique(t *testing.T) {
	store := CreatePendingStore[struct{}](0)

	var mu sync.Mutex
	seen := map[uint64]bool{}
	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := store.GetNextId()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 1600)
}
