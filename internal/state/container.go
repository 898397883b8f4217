// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"slices"
	"sync"
)

// Container is a mutex-guarded copy-on-write slice of entities.
type Container[T Entity] struct {
	mu       sync.RWMutex
	items    []T
	watchers map[int]func([]T)
	nextID   int
}

// NewContainer returns a container holding a copy of items.
func NewContainer[T Entity](items ...T) *Container[T] {
	return &Container[T]{
		items:    slices.Clone(items),
		watchers: make(map[int]func([]T)),
	}
}

// Snapshot returns the current slice. Callers must not modify it.
func (c *Container[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Find returns the element with the given id from the current snapshot.
func (c *Container[T]) Find(id string) (T, bool) {
	return Find(c.Snapshot(), id)
}

// Len returns the number of elements.
func (c *Container[T]) Len() int {
	return len(c.Snapshot())
}

// Set replaces the whole content with a copy of items.
func (c *Container[T]) Set(items []T) {
	c.Update(func([]T) []T { return slices.Clone(items) })
}

// Update swaps in the result of fn applied to the current snapshot. fn must
// not modify its argument. Watchers are notified after the swap, outside the
// lock.
func (c *Container[T]) Update(fn func([]T) []T) {
	c.mu.Lock()
	next := fn(c.items)
	c.items = next
	watchers := make([]func([]T), 0, len(c.watchers))
	for _, w := range c.watchers {
		watchers = append(watchers, w)
	}
	c.mu.Unlock()

	for _, w := range watchers {
		w(next)
	}
}

// Watch registers fn to run after every Update. The returned function
// removes the watcher; calling it more than once is harmless.
func (c *Container[T]) Watch(fn func([]T)) (unwatch func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.watchers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.watchers, id)
			c.mu.Unlock()
		})
	}
}

// Ref holds the id of the currently selected entity, or "" for none.
type Ref struct {
	mu sync.RWMutex
	id string
}

// Get returns the selected id.
func (r *Ref) Get() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id
}

// Set selects id.
func (r *Ref) Set(id string) {
	r.mu.Lock()
	r.id = id
	r.mu.Unlock()
}

// ClearIf drops the selection when it points at id and reports whether it did.
func (r *Ref) ClearIf(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.id == "" || r.id != id {
		return false
	}
	r.id = ""
	return true
}
