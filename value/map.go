package value

import (
	"fmt"
	"io"

	"github.com/oasisprotocol/deepclone/value/orderedmap"
)

// Map is a mapping from arbitrary keys to values, iterated in insertion
// order.
//
// Keys are compared with SameValueZero semantics: primitives by value
// (NaN equals NaN, -0 equals +0) and referenceable values by identity.
type Map struct {
	entries *orderedmap.OrderedMap[any]
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return m.entries.Len()
}

// Get returns the value stored under key.
func (m *Map) Get(key any) (any, bool) {
	v, ok := m.entries.Get(key)
	if !ok {
		return Undefined, false
	}
	return v, true
}

// Has checks whether key is present.
func (m *Map) Has(key any) bool {
	return m.entries.Has(key)
}

// Set stores v under key.
func (m *Map) Set(key, v any) {
	m.entries.Set(key, v)
}

// Delete removes key and returns true if it was present.
func (m *Map) Delete(key any) bool {
	return m.entries.Delete(key)
}

// Clear removes all entries.
func (m *Map) Clear() {
	m.entries.Clear()
}

// Range calls fn for every entry in insertion order until fn returns
// false.
func (m *Map) Range(fn func(key, v any) bool) {
	m.entries.Range(fn)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []any {
	return m.entries.Keys()
}

// PrettyPrint writes a pretty-printed representation of the map.
func (m *Map) PrettyPrint(prefix string, w io.Writer) {
	fmt.Fprintf(w, "%s%s\n", prefix, Sprint(m))
}

// String returns a string representation of the map.
func (m *Map) String() string {
	return Sprint(m)
}

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{entries: orderedmap.New[any]()}
}

// Set is a collection of unique elements, iterated in insertion order.
//
// Elements are compared like Map keys.
type Set struct {
	elems *orderedmap.OrderedMap[struct{}]
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return s.elems.Len()
}

// Add inserts v if it is not already present.
func (s *Set) Add(v any) {
	if !s.elems.Has(v) {
		s.elems.Set(v, struct{}{})
	}
}

// Has checks whether v is present.
func (s *Set) Has(v any) bool {
	return s.elems.Has(v)
}

// Delete removes v and returns true if it was present.
func (s *Set) Delete(v any) bool {
	return s.elems.Delete(v)
}

// Clear removes all elements.
func (s *Set) Clear() {
	s.elems.Clear()
}

// Range calls fn for every element in insertion order until fn returns
// false.
func (s *Set) Range(fn func(v any) bool) {
	s.elems.Range(func(k any, _ struct{}) bool {
		return fn(k)
	})
}

// Values returns the elements in insertion order.
func (s *Set) Values() []any {
	return s.elems.Keys()
}

// PrettyPrint writes a pretty-printed representation of the set.
func (s *Set) PrettyPrint(prefix string, w io.Writer) {
	fmt.Fprintf(w, "%s%s\n", prefix, Sprint(s))
}

// String returns a string representation of the set.
func (s *Set) String() string {
	return Sprint(s)
}

// NewSet creates a set holding the given elements.
func NewSet(elems ...any) *Set {
	s := &Set{elems: orderedmap.New[struct{}]()}
	for _, v := range elems {
		s.Add(v)
	}
	return s
}
