// Package orderedmap implements an insertion-ordered map with
// SameValueZero key semantics.
//
// Keys of any type may be used. Comparable keys are compared by value,
// with the exception of floating point numbers where all NaNs are
// considered equal and negative zero equals positive zero. Keys that are
// not comparable in Go (maps, slices, funcs) are compared by identity.
package orderedmap

import (
	"container/list"
	"fmt"
	"math"
	"reflect"
)

type nanKey struct{}

type identityKey struct {
	typ reflect.Type
	ptr uintptr
	len int
	cap int
}

// KeyOf returns the comparable key under which k is stored.
//
// Two keys are the same entry if and only if their KeyOf results are
// equal. Panics if k is of a non-comparable type without identity
// (e.g. a struct holding a slice).
func KeyOf(k any) any {
	switch kk := k.(type) {
	case nil:
		return nil
	case float64:
		switch {
		case math.IsNaN(kk):
			return nanKey{}
		case kk == 0:
			return float64(0)
		}
		return kk
	case float32:
		switch {
		case kk != kk:
			return nanKey{}
		case kk == 0:
			return float32(0)
		}
		return kk
	}

	t := reflect.TypeOf(k)
	if t.Comparable() {
		return k
	}

	v := reflect.ValueOf(k)
	switch v.Kind() {
	case reflect.Map, reflect.Func:
		return identityKey{typ: t, ptr: v.Pointer()}
	case reflect.Slice:
		return identityKey{typ: t, ptr: v.Pointer(), len: v.Len(), cap: v.Cap()}
	default:
		panic(fmt.Errorf("orderedmap: unhashable key type: %T", k))
	}
}

type pair[V any] struct {
	key   any
	value V

	element *list.Element
}

// OrderedMap is an insertion-ordered map.
//
// An OrderedMap is not safe for concurrent use.
type OrderedMap[V any] struct {
	entries map[any]*pair[V]
	order   *list.List
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	return m.order.Len()
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key any) (V, bool) {
	if p, ok := m.entries[KeyOf(key)]; ok {
		return p.value, true
	}
	var zero V
	return zero, false
}

// Has checks whether key is present.
func (m *OrderedMap[V]) Has(key any) bool {
	_, ok := m.entries[KeyOf(key)]
	return ok
}

// Set stores value under key. Updating an existing key keeps its
// position in the iteration order.
func (m *OrderedMap[V]) Set(key any, value V) {
	k := KeyOf(key)
	if p, ok := m.entries[k]; ok {
		p.value = value
		return
	}

	p := &pair[V]{
		key:   normalizeZero(key),
		value: value,
	}
	p.element = m.order.PushBack(p)
	m.entries[k] = p
}

// Delete removes key and returns true if it was present.
func (m *OrderedMap[V]) Delete(key any) bool {
	k := KeyOf(key)
	p, ok := m.entries[k]
	if !ok {
		return false
	}
	m.order.Remove(p.element)
	p.element = nil
	delete(m.entries, k)

	if len(m.entries) != m.order.Len() {
		panic(fmt.Errorf("orderedmap: inconsistent sizes of the underlying list (%v) and map (%v) after Delete", m.order.Len(), len(m.entries)))
	}
	return true
}

// Clear removes all entries.
func (m *OrderedMap[V]) Clear() {
	for el := m.order.Front(); el != nil; el = el.Next() {
		el.Value.(*pair[V]).element = nil
	}
	m.order = list.New()
	m.entries = make(map[any]*pair[V])
}

// Range calls fn for every entry in insertion order until fn returns
// false.
//
// Iteration covers the entries present when Range was called; entries
// deleted by fn before they are reached are skipped.
func (m *OrderedMap[V]) Range(fn func(key any, value V) bool) {
	snapshot := make([]*pair[V], 0, m.order.Len())
	for el := m.order.Front(); el != nil; el = el.Next() {
		snapshot = append(snapshot, el.Value.(*pair[V]))
	}
	for _, p := range snapshot {
		if p.element == nil {
			continue
		}
		if !fn(p.key, p.value) {
			return
		}
	}
}

// Keys returns all keys in insertion order.
func (m *OrderedMap[V]) Keys() []any {
	keys := make([]any, 0, m.order.Len())
	for el := m.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*pair[V]).key)
	}
	return keys
}

// New returns a new empty ordered map.
func New[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{
		entries: make(map[any]*pair[V]),
		order:   list.New(),
	}
}

// normalizeZero stores negative zero keys as positive zero.
func normalizeZero(k any) any {
	switch kk := k.(type) {
	case float64:
		if kk == 0 {
			return float64(0)
		}
	case float32:
		if kk == 0 {
			return float32(0)
		}
	}
	return k
}
