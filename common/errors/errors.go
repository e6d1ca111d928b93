// Package errors implements registered errors identified by a module
// name and a numeric code.
//
// Every package declares its errors once, at init time, with New. A
// registered error can be wrapped with WithContext and still be matched
// with Is and mapped back to its module and code with Code.
package errors

import (
	"errors"
	"fmt"
	"sync"
)

const (
	// UnknownModule is the module of errors that were not registered.
	UnknownModule = "unknown"

	// CodeNoError is reserved for the absence of an error.
	CodeNoError = 0
)

// Re-exports so this package can be used as a replacement for errors.
var (
	As     = errors.As
	Is     = errors.Is
	Unwrap = errors.Unwrap
)

type errorID struct {
	module string
	code   uint32
}

func (id errorID) String() string {
	return fmt.Sprintf("%s-%d", id.module, id.code)
}

var (
	registryLock sync.RWMutex
	registry     = make(map[errorID]*codedError)

	errUnknown = New(UnknownModule, 1, "unknown error")
)

type codedError struct {
	id  errorID
	msg string
}

func (e *codedError) Error() string {
	return e.msg
}

type contextError struct {
	err     error
	context string
}

func (e *contextError) Error() string {
	return e.err.Error() + ": " + e.context
}

func (e *contextError) Unwrap() error {
	return e.err
}

// New registers and returns a new error.
//
// Panics if the module and code pair is already taken or if code is
// CodeNoError.
func New(module string, code uint32, msg string) error {
	if code == CodeNoError {
		panic(fmt.Errorf("errors: code %d is reserved", CodeNoError))
	}

	id := errorID{module, code}

	registryLock.Lock()
	defer registryLock.Unlock()

	if prev, ok := registry[id]; ok {
		panic(fmt.Errorf("errors: %s already registered as %q", id, prev.msg))
	}
	e := &codedError{id: id, msg: msg}
	registry[id] = e

	return e
}

// Lookup returns the error registered under module and code.
func Lookup(module string, code uint32) (error, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()

	e, ok := registry[errorID{module, code}]
	if !ok {
		return nil, false
	}
	return e, true
}

// WithContext wraps err with additional context. An empty context
// returns err unchanged.
func WithContext(err error, context string) error {
	if context == "" {
		return err
	}
	return &contextError{err: err, context: context}
}

// WithContextf is WithContext with a formatted context string.
func WithContextf(err error, format string, args ...any) error {
	return WithContext(err, fmt.Sprintf(format, args...))
}

// Context returns the context err was wrapped with, if any.
func Context(err error) string {
	var ce *contextError
	if !As(err, &ce) {
		return ""
	}
	return ce.context
}

// Code returns the module and code of err.
//
// A nil error yields an empty module and CodeNoError. Errors that do not
// wrap a registered error are reported as UnknownModule.
func Code(err error) (string, uint32) {
	if err == nil {
		return "", CodeNoError
	}

	var ce *codedError
	if !As(err, &ce) {
		ce = errUnknown.(*codedError)
	}
	return ce.id.module, ce.id.code
}
