package value

import (
	"fmt"
	"io"
)

// DefaultErrorName is the name of errors created by NewError.
const DefaultErrorName = "Error"

// Error is a mutable error object with a name and a message.
type Error struct {
	name    string
	message string
}

// Name returns the error name.
func (e *Error) Name() string {
	return e.name
}

// SetName sets the error name.
func (e *Error) SetName(name string) {
	e.name = name
}

// Message returns the error message.
func (e *Error) Message() string {
	return e.message
}

// SetMessage sets the error message.
func (e *Error) SetMessage(message string) {
	e.message = message
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.message == "":
		return e.name
	case e.name == "":
		return e.message
	default:
		return e.name + ": " + e.message
	}
}

// PrettyPrint writes a pretty-printed representation of the error.
func (e *Error) PrettyPrint(prefix string, w io.Writer) {
	fmt.Fprintf(w, "%s%s\n", prefix, e.Error())
}

// NewError creates an error named DefaultErrorName.
func NewError(message string) *Error {
	return NewNamedError(DefaultErrorName, message)
}

// NewNamedError creates an error with the given name.
func NewNamedError(name, message string) *Error {
	return &Error{name: name, message: message}
}

// NewErrorFrom creates an independent error with the same name and
// message as e.
func NewErrorFrom(e *Error) *Error {
	return &Error{name: e.name, message: e.message}
}
