// Package store holds the per-entity snapshot caches. Each collection
// owns one refetchable copy of an entity table: a snapshot, a staleness
// flag, and the error of the last failed refresh. Mutators patch the
// snapshot in place; Invalidate forces the next reader to refresh.
package store

import "sync"

// Collection caches one entity collection. A new collection starts stale
// so the first reader triggers a fetch.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	stale bool
	err   error
}

// NewCollection creates an empty, stale collection.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{stale: true}
}

// Stale reports whether the snapshot needs a refresh.
func (c *Collection[T]) Stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stale
}

// Err returns the error stored by the last failed refresh, if any.
func (c *Collection[T]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Snapshot returns a copy of the cached items.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of cached items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Replace swaps in a fresh snapshot wholesale and clears staleness.
// There is no incremental merge.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.stale = false
	c.err = nil
}

// Fail records a refresh failure. The snapshot is emptied and the
// collection stays stale, so a later reader retries.
func (c *Collection[T]) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.stale = true
	c.err = err
}

// Prepend inserts an item at the head of the snapshot, matching the
// created-at-descending read order.
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

// Patch applies fn to the first item matched and reports whether a match
// was found.
func (c *Collection[T]) Patch(match func(T) bool, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if match(c.items[i]) {
			fn(&c.items[i])
			return true
		}
	}
	return false
}

// Invalidate marks the snapshot stale without dropping it. Readers keep
// serving the old snapshot until a refresh replaces it.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stale = true
}
