package value

import (
	"fmt"
	"io"

	"github.com/oasisprotocol/deepclone/value/orderedmap"
)

type property struct {
	value      any
	enumerable bool
}

// Object is a keyed collection of string-keyed properties.
//
// Properties held directly by an object are its own properties, kept in
// insertion order. Lookups that miss fall through to the prototype chain,
// whose members are inherited and never part of Keys.
type Object struct {
	proto *Object
	props *orderedmap.OrderedMap[property]
}

// Proto returns the prototype of the object, which may be nil.
func (o *Object) Proto() *Object {
	return o.proto
}

// Set stores v under key as an own property. A new property is
// enumerable, an existing one keeps its enumerability.
func (o *Object) Set(key string, v any) {
	p, ok := o.props.Get(key)
	if !ok {
		p.enumerable = true
	}
	p.value = v
	o.props.Set(key, p)
}

// Define stores v under key as an own property with the given
// enumerability.
func (o *Object) Define(key string, v any, enumerable bool) {
	o.props.Set(key, property{value: v, enumerable: enumerable})
}

// Get returns the value of the property key, consulting the prototype
// chain if the object does not hold it itself.
func (o *Object) Get(key string) (any, bool) {
	for obj := o; obj != nil; obj = obj.proto {
		if p, ok := obj.props.Get(key); ok {
			return p.value, true
		}
	}
	return Undefined, false
}

// GetOwn returns the value of the own property key.
func (o *Object) GetOwn(key string) (any, bool) {
	p, ok := o.props.Get(key)
	if !ok {
		return Undefined, false
	}
	return p.value, true
}

// HasOwn checks whether key is an own property.
func (o *Object) HasOwn(key string) bool {
	return o.props.Has(key)
}

// IsEnumerable checks whether key is an own enumerable property.
func (o *Object) IsEnumerable(key string) bool {
	p, ok := o.props.Get(key)
	return ok && p.enumerable
}

// Delete removes the own property key.
func (o *Object) Delete(key string) bool {
	return o.props.Delete(key)
}

// Keys returns the own enumerable property keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.props.Len())
	o.props.Range(func(k any, p property) bool {
		if p.enumerable {
			keys = append(keys, k.(string))
		}
		return true
	})
	return keys
}

// OwnKeys returns all own property keys in insertion order.
func (o *Object) OwnKeys() []string {
	keys := make([]string, 0, o.props.Len())
	for _, k := range o.props.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Len returns the number of own enumerable properties.
func (o *Object) Len() int {
	return len(o.Keys())
}

// PrettyPrint writes a pretty-printed representation of the object.
func (o *Object) PrettyPrint(prefix string, w io.Writer) {
	fmt.Fprintf(w, "%s%s\n", prefix, Sprint(o))
}

// String returns a string representation of the object.
func (o *Object) String() string {
	return Sprint(o)
}

// NewObject creates an empty object without a prototype.
func NewObject() *Object {
	return NewObjectWithProto(nil)
}

// NewObjectWithProto creates an empty object with the given prototype.
func NewObjectWithProto(proto *Object) *Object {
	return &Object{
		proto: proto,
		props: orderedmap.New[property](),
	}
}

// ObjectFrom creates an object from alternating key/value pairs. Panics
// if a key is not a string or the pairs are unbalanced.
func ObjectFrom(kvs ...any) *Object {
	if len(kvs)%2 != 0 {
		panic("value: unbalanced key/value pairs")
	}
	o := NewObject()
	for i := 0; i < len(kvs); i += 2 {
		o.Set(kvs[i].(string), kvs[i+1])
	}
	return o
}
