package subscription

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddIsIdempotent(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Add(100))
	assert.False(t, r.Add(100))
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Contains(100))
}

func TestRegistry_RemoveNonMember(t *testing.T) {
	r := NewRegistry()
	r.Add(1)

	assert.False(t, r.Remove(2))
	assert.Equal(t, 1, r.Len())

	assert.True(t, r.Remove(1))
	assert.False(t, r.Remove(1))
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Contains(1))
}

func TestRegistry_SnapshotIsCopy(t *testing.T) {
	r := NewRegistry()
	r.Add(3)
	r.Add(1)
	r.Add(2)

	snapshot := r.Snapshot()
	require.Equal(t, []int64{1, 2, 3}, snapshot)

	r.Remove(2)
	r.Add(4)

	assert.Equal(t, []int64{1, 2, 3}, snapshot)
	assert.Equal(t, []int64{1, 3, 4}, r.Snapshot())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			r.Add(id)
			r.Add(id)
		}(i)
		go func() {
			defer wg.Done()
			for range r.Snapshot() {
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, r.Len())
}
