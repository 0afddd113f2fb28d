package ordered

import (
	"iter"
	"slices"
)

// Iterable is satisfied by every Map instantiation. Encoders use it to walk
// maps without knowing the value type.
type Iterable interface {
	Len() int
	Each(fn func(key string, value any) bool)
}

// Map maintains insertion order for deterministic output.
type Map[V any] struct {
	values map[string]V
	order  []string
}

// New returns an empty map sized for capacity entries.
func New[V any](capacity int) *Map[V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Map[V]{
		values: make(map[string]V, capacity),
		order:  make([]string, 0, capacity),
	}
}

// Set stores value under key. A key that already exists keeps its position.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.order)
}

// All iterates key/value pairs in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, key := range m.order {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// Each calls fn for every entry in insertion order until fn returns false.
func (m *Map[V]) Each(fn func(key string, value any) bool) {
	for key, value := range m.All() {
		if !fn(key, value) {
			return
		}
	}
}
