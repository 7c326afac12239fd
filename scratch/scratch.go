// Package scratch is a typed key/value space for transient plugin state.
//
// A Map belongs to whoever drives the plugin's entry points and is passed to
// the code that needs it; nothing here is global. Entries never expire and
// are never persisted. A Map is not safe for concurrent use.
package scratch

import "sort"

// Map holds values of any type under string keys.
// The zero value is ready to use and allocates on the first Set.
type Map struct {
	entries map[string]any
}

// New returns an empty map.
func New() *Map {
	return &Map{}
}

// Set stores v under key, replacing any previous value of any type.
func Set[T any](m *Map, key string, v T) {
	if m.entries == nil {
		m.entries = make(map[string]any)
	}
	m.entries[key] = v
}

// Get returns the value stored under key if it is a T.
// A value stored as another type is reported absent.
func Get[T any](m *Map, key string) (T, bool) {
	var zero T
	v, ok := m.entries[key]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Remove deletes key. Removing a missing key does nothing.
func (m *Map) Remove(key string) {
	delete(m.entries, key)
}

// Has reports whether key holds a value of any type.
func (m *Map) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

func (m *Map) Len() int {
	return len(m.entries)
}

// Keys returns the keys in sorted order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
