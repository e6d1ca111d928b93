package value

import (
	"fmt"
	"io"
)

// Array is an ordered collection.
type Array struct {
	elems []any
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.elems)
}

// Get returns the element at index i, or Undefined if i is out of range.
func (a *Array) Get(i int) any {
	if i < 0 || i >= len(a.elems) {
		return Undefined
	}
	return a.elems[i]
}

// Set stores v at index i, growing the array with Undefined elements if
// needed. Panics if i is negative.
func (a *Array) Set(i int, v any) {
	if i < 0 {
		panic(fmt.Errorf("value: negative array index: %d", i))
	}
	for len(a.elems) <= i {
		a.elems = append(a.elems, Undefined)
	}
	a.elems[i] = v
}

// Push appends elements to the end of the array.
func (a *Array) Push(elems ...any) {
	a.elems = append(a.elems, elems...)
}

// Elements returns a copy of the elements.
func (a *Array) Elements() []any {
	return append([]any(nil), a.elems...)
}

// PrettyPrint writes a pretty-printed representation of the array.
func (a *Array) PrettyPrint(prefix string, w io.Writer) {
	fmt.Fprintf(w, "%s%s\n", prefix, Sprint(a))
}

// String returns a string representation of the array.
func (a *Array) String() string {
	return Sprint(a)
}

// NewArray creates an array holding the given elements.
func NewArray(elems ...any) *Array {
	return &Array{elems: append([]any(nil), elems...)}
}

// NewArrayLen creates an array of n Undefined elements.
func NewArrayLen(n int) *Array {
	elems := make([]any, n)
	for i := range elems {
		elems[i] = Undefined
	}
	return &Array{elems: elems}
}
