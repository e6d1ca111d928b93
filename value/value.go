// Package value implements a universe of heterogeneous, mutable values
// that may form arbitrary graphs, including cycles.
//
// A value is any Go value. Booleans, numbers, strings, the Undefined and
// Null markers, symbols and functions are primitives: they are immutable
// or have no meaningful duplicate. The container types of this package
// (Array, Object, Map, Set, RegExp, Date, Error and BoxedSymbol) are
// referenceable: they have identity and mutable internal state, and may
// reference each other freely.
//
// None of the container types are safe for concurrent mutation.
package value

import "fmt"

type marker uint8

const (
	undefinedMarker marker = iota + 1
	nullMarker
)

func (m marker) String() string {
	switch m {
	case undefinedMarker:
		return "undefined"
	case nullMarker:
		return "null"
	default:
		return "<invalid marker>"
	}
}

var (
	// Undefined is the absent value marker.
	Undefined any = undefinedMarker
	// Null is the empty value marker.
	Null any = nullMarker
)

// IsUndefined returns true iff v is nil or the Undefined marker.
func IsUndefined(v any) bool {
	return v == nil || v == Undefined
}

// Symbol is a unique symbolic token. Two symbols are equal only if they
// are the same token, regardless of their descriptions.
type Symbol struct {
	description string
}

// Description returns the description the symbol was created with.
func (s *Symbol) Description() string {
	return s.description
}

// String returns a string representation of the symbol.
func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}

// NewSymbol creates a new unique symbol.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// Function is a named callable value.
type Function struct {
	name string
	fn   func(args ...any) any
}

// Name returns the function name, which may be empty.
func (f *Function) Name() string {
	return f.name
}

// Call invokes the function.
func (f *Function) Call(args ...any) any {
	if f.fn == nil {
		return Undefined
	}
	return f.fn(args...)
}

// String returns a string representation of the function.
func (f *Function) String() string {
	if f.name == "" {
		return "[Function (anonymous)]"
	}
	return "[Function: " + f.name + "]"
}

// NewFunction creates a new callable value.
func NewFunction(name string, fn func(args ...any) any) *Function {
	return &Function{name: name, fn: fn}
}

// Host is an environment singleton, such as a global utility namespace
// or a platform handle. Hosts have no meaningful duplicate.
type Host struct {
	name string
}

// Name returns the name of the host object.
func (h *Host) Name() string {
	return h.name
}

// String returns a string representation of the host object.
func (h *Host) String() string {
	return fmt.Sprintf("[object %s]", h.name)
}

// NewHost creates a new environment singleton.
func NewHost(name string) *Host {
	return &Host{name: name}
}

// Well-known environment singletons.
var (
	Math     = NewHost("Math")
	JSON     = NewHost("JSON")
	Global   = NewHost("Window")
	Document = NewHost("HTMLDocument")
)
