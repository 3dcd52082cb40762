// Package store holds the in-process fallback collections used when the
// document store is unreachable. Data lives for the process lifetime only.
package store

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("record not found")

// Collection is an ordered in-memory set of records keyed by an opaque id.
// Handlers touch it from many goroutines, so every access takes the lock.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
}

func NewCollection[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{idOf: idOf}
}

// Insert appends a record, preserving insertion order.
func (c *Collection[T]) Insert(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	return item
}

// All returns a copy of every record in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// AllSorted returns a copy of every record ordered by less. Sorting happens
// per read; the underlying slice stays in insertion order.
func (c *Collection[T]) AllSorted(less func(a, b T) bool) []T {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Find returns all records matching the predicate, in insertion order.
func (c *Collection[T]) Find(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, item := range c.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Update applies mutate to the record with the given id in place.
func (c *Collection[T]) Update(id string, mutate func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			mutate(&c.items[i])
			return nil
		}
	}
	return ErrNotFound
}

func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
