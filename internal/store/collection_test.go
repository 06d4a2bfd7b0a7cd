package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCollectionStartsStale(t *testing.T) {
	c := NewCollection[int]()
	assert.True(t, c.Stale())
	assert.NoError(t, c.Err())
	assert.Empty(t, c.Snapshot())
}

func TestReplaceClearsStalenessAndError(t *testing.T) {
	c := NewCollection[int]()
	c.Fail(errors.New("boom"))

	c.Replace([]int{3, 2, 1})

	assert.False(t, c.Stale())
	assert.NoError(t, c.Err())
	assert.Equal(t, []int{3, 2, 1}, c.Snapshot())
	assert.Equal(t, 3, c.Len())
}

func TestFailEmptiesAndStaysStale(t *testing.T) {
	c := NewCollection[int]()
	c.Replace([]int{1, 2})

	dbErr := errors.New("connection refused")
	c.Fail(dbErr)

	assert.True(t, c.Stale(), "failed refresh must leave the collection retryable")
	assert.Equal(t, dbErr, c.Err())
	assert.Empty(t, c.Snapshot())
}

func TestPrependPutsNewestFirst(t *testing.T) {
	c := NewCollection[int]()
	c.Replace([]int{2, 1})

	c.Prepend(3)

	assert.Equal(t, []int{3, 2, 1}, c.Snapshot())
}

func TestPatchUpdatesFirstMatch(t *testing.T) {
	type row struct {
		ID   int
		Name string
	}
	c := NewCollection[row]()
	c.Replace([]row{{1, "a"}, {2, "b"}})

	ok := c.Patch(
		func(r row) bool { return r.ID == 2 },
		func(r *row) { r.Name = "patched" },
	)

	assert.True(t, ok)
	assert.Equal(t, "patched", c.Snapshot()[1].Name)
	assert.False(t, c.Stale(), "patching must not invalidate the snapshot")
}

func TestPatchMissReportsFalse(t *testing.T) {
	c := NewCollection[int]()
	c.Replace([]int{1})

	ok := c.Patch(func(int) bool { return false }, func(*int) {})
	assert.False(t, ok)
}

func TestInvalidateKeepsItems(t *testing.T) {
	c := NewCollection[int]()
	c.Replace([]int{1, 2})

	c.Invalidate()

	assert.True(t, c.Stale())
	assert.Equal(t, []int{1, 2}, c.Snapshot(), "stale reads keep serving the old snapshot")
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewCollection[int]()
	c.Replace([]int{1, 2, 3})

	snap := c.Snapshot()
	snap[0] = 99

	assert.Equal(t, []int{1, 2, 3}, c.Snapshot())
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	c := NewCollection[int]()
	c.Replace([]int{0})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.Prepend(n)
		}(i)
		go func() {
			defer wg.Done()
			_ = c.Snapshot()
			_ = c.Stale()
		}()
	}
	wg.Wait()

	assert.Equal(t, 51, c.Len())
}
