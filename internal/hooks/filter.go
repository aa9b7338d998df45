package hooks

import "sync"

// Filter is a named, append-only list of plugin contributions.
type Filter[T any] struct {
	name string

	mu    sync.RWMutex
	items []T
}

// NewFilter returns an empty filter with the given name.
func NewFilter[T any](name string) *Filter[T] {
	return &Filter[T]{name: name}
}

// Name returns the extension point name.
func (f *Filter[T]) Name() string {
	return f.name
}

// AddItem appends item. Duplicates are kept.
func (f *Filter[T]) AddItem(item T) {
	f.mu.Lock()
	f.items = append(f.items, item)
	f.mu.Unlock()
}

// Items returns a copy of the contributions in registration order.
func (f *Filter[T]) Items() []T {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]T, len(f.items))
	copy(out, f.items)
	return out
}

// Len reports the number of contributions.
func (f *Filter[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}

// Clear drops every contribution, as done on a plugin reload.
func (f *Filter[T]) Clear() {
	f.mu.Lock()
	f.items = nil
	f.mu.Unlock()
}
