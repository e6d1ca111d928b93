package clone

import (
	"reflect"
	"regexp"
	"time"

	"github.com/oasisprotocol/deepclone/value"
)

// Kind is the runtime category of a value, as far as cloning is
// concerned.
type Kind uint8

const (
	// KindPrimitive is an immutable or identity-only value: nil, markers,
	// booleans, numbers, strings, symbols and callables.
	KindPrimitive Kind = iota
	// KindOrdered is an ordered collection: *value.Array or []any.
	KindOrdered
	// KindKeyed is a keyed collection: *value.Object or map[string]any.
	KindKeyed
	// KindMapping is a *value.Map.
	KindMapping
	// KindSet is a *value.Set.
	KindSet
	// KindPattern is a *value.RegExp.
	KindPattern
	// KindTimestamp is a *value.Date.
	KindTimestamp
	// KindError is a *value.Error.
	KindError
	// KindBoxedSymbol is a *value.BoxedSymbol.
	KindBoxedSymbol
	// KindHost is an environment singleton, passed through unchanged.
	KindHost
	// KindUnsupported is any other value, passed through unchanged.
	KindUnsupported
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindOrdered:
		return "ordered"
	case KindKeyed:
		return "keyed"
	case KindMapping:
		return "mapping"
	case KindSet:
		return "set"
	case KindPattern:
		return "pattern"
	case KindTimestamp:
		return "timestamp"
	case KindError:
		return "error"
	case KindBoxedSymbol:
		return "boxed_symbol"
	case KindHost:
		return "host"
	case KindUnsupported:
		return "unsupported"
	default:
		return "[unknown kind]"
	}
}

// IsReferenceable returns true iff values of the kind are copied.
func (k Kind) IsReferenceable() bool {
	return k >= KindOrdered && k <= KindBoxedSymbol
}

// KindOf classifies v by its concrete type.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128,
		*value.Symbol, *value.Function,
		time.Time, *regexp.Regexp:
		return KindPrimitive
	case *value.Array, []any:
		return KindOrdered
	case *value.Object, map[string]any:
		return KindKeyed
	case *value.Map:
		return KindMapping
	case *value.Set:
		return KindSet
	case *value.RegExp:
		return KindPattern
	case *value.Date:
		return KindTimestamp
	case *value.Error:
		return KindError
	case *value.BoxedSymbol:
		return KindBoxedSymbol
	case *value.Host:
		return KindHost
	}
	if v == value.Undefined || v == value.Null {
		return KindPrimitive
	}

	// Named scalar types and callables.
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Func:
		return KindPrimitive
	default:
		return KindUnsupported
	}
}
