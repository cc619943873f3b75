package store

import "sort"

// Table is one park's cache of canonical entries keyed by item id.
// A Table is only reachable inside a Store mutation, under the store lock.
type Table[T any] struct {
	entries map[string]*T
}

func newTable[T any]() *Table[T] {
	return &Table[T]{entries: make(map[string]*T)}
}

// Get returns the entry for id.
func (t *Table[T]) Get(id string) (*T, bool) {
	e, ok := t.entries[id]
	return e, ok
}

// Ensure returns the entry for id, creating an empty one if absent.
// Callers merge into the returned entry; fields they do not set keep their value.
func (t *Table[T]) Ensure(id string) *T {
	e, ok := t.entries[id]
	if !ok {
		e = new(T)
		t.entries[id] = e
	}
	return e
}

// Put replaces the entry for id.
func (t *Table[T]) Put(id string, entry T) {
	t.entries[id] = &entry
}

// Each calls fn for every entry in ascending id order.
func (t *Table[T]) Each(fn func(id string, entry *T)) {
	for _, id := range t.ids() {
		fn(id, t.entries[id])
	}
}

// Len returns the number of entries.
func (t *Table[T]) Len() int {
	return len(t.entries)
}

func (t *Table[T]) ids() []string {
	ids := make([]string, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
