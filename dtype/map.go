package dtype

import (
	"slices"
	"sort"
)

// Order selects a Map's iteration order. It is fixed when the Map is
// constructed and cannot change afterwards.
type Order int

const (
	// Sorted iterates keys in lexicographic order.
	Sorted Order = iota
	// Insertion iterates keys in the order they were first inserted.
	Insertion
)

// Map is the key-unique string-to-Value container backing object values.
// Keys are unique; inserting an existing key overwrites its value in place
// and reports the previous one.
type Map struct {
	order Order
	keys  []string
	vals  []Value
}

// NewMap returns an empty Map with Sorted iteration order.
func NewMap() *Map {
	return &Map{order: Sorted}
}

// NewMapWith returns an empty Map with the given iteration order.
func NewMapWith(o Order) *Map {
	return &Map{order: o}
}

func (m *Map) Order() Order { return m.order }

func (m *Map) Len() int { return len(m.keys) }

// find locates key, returning its slot and whether it is present. For a
// Sorted map the slot is the insertion point when absent.
func (m *Map) find(key string) (int, bool) {
	if m.order == Sorted {
		i := sort.SearchStrings(m.keys, key)
		return i, i < len(m.keys) && m.keys[i] == key
	}
	for i, k := range m.keys {
		if k == key {
			return i, true
		}
	}
	return len(m.keys), false
}

func (m *Map) Has(key string) bool {
	_, ok := m.find(key)
	return ok
}

func (m *Map) Get(key string) (Value, bool) {
	i, ok := m.find(key)
	if !ok {
		return Value{}, false
	}
	return m.vals[i], true
}

// GetPtr returns a pointer to the value stored under key, or nil. The
// pointer stays valid until the next insertion or removal.
func (m *Map) GetPtr(key string) *Value {
	i, ok := m.find(key)
	if !ok {
		return nil
	}
	return &m.vals[i]
}

// Set inserts v under key. When the key already exists its value is
// replaced, the map length is unchanged, and the previous value is returned
// with ok=true.
func (m *Map) Set(key string, v Value) (prev Value, ok bool) {
	i, found := m.find(key)
	if found {
		prev = m.vals[i]
		m.vals[i] = v
		return prev, true
	}
	m.keys = slices.Insert(m.keys, i, key)
	m.vals = slices.Insert(m.vals, i, v)
	return Value{}, false
}

// GetOrInsert returns a pointer to the value under key, inserting def first
// when the key is absent.
func (m *Map) GetOrInsert(key string, def Value) *Value {
	i, found := m.find(key)
	if !found {
		m.keys = slices.Insert(m.keys, i, key)
		m.vals = slices.Insert(m.vals, i, def)
	}
	return &m.vals[i]
}

// Delete removes key and returns the value it held.
func (m *Map) Delete(key string) (Value, bool) {
	i, ok := m.find(key)
	if !ok {
		return Value{}, false
	}
	v := m.vals[i]
	m.keys = slices.Delete(m.keys, i, i+1)
	m.vals = slices.Delete(m.vals, i, i+1)
	return v, true
}

// Keys returns the keys in iteration order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Range calls f for each entry in iteration order until f returns false.
// The value pointer addresses the map's own storage.
func (m *Map) Range(f func(key string, v *Value) bool) {
	for i := range m.keys {
		if !f(m.keys[i], &m.vals[i]) {
			return
		}
	}
}

// Clone deep-copies the map, preserving its order configuration.
func (m *Map) Clone() *Map {
	res := &Map{
		order: m.order,
		keys:  slices.Clone(m.keys),
		vals:  make([]Value, len(m.vals)),
	}
	for i := range m.vals {
		res.vals[i] = m.vals[i].Clone()
	}
	return res
}

// Equal reports content equality: the same key set with equal values,
// regardless of either map's configured order.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i, k := range m.keys {
		ov, ok := o.Get(k)
		if !ok || !m.vals[i].Equal(ov) {
			return false
		}
	}
	return true
}
