package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const testModule = "errors/test"

var (
	errTestA = New(testModule, 1, "test: error A")
	errTestB = New(testModule, 2, "test: error B")
)

func TestCode(t *testing.T) {
	require := require.New(t)

	module, code := Code(nil)
	require.Equal("", module, "nil error has no module")
	require.EqualValues(CodeNoError, code)

	module, code = Code(errTestB)
	require.Equal(testModule, module)
	require.EqualValues(2, code)

	module, code = Code(fmt.Errorf("wrapped: %w", errTestA))
	require.Equal(testModule, module, "wrapped errors keep their code")
	require.EqualValues(1, code)

	module, code = Code(fmt.Errorf("plain"))
	require.Equal(UnknownModule, module, "foreign errors are unknown")
	require.EqualValues(1, code)
}

func TestWithContext(t *testing.T) {
	require := require.New(t)

	require.Equal(errTestA, WithContext(errTestA, ""), "empty context is a no-op")

	err := WithContextf(errTestA, "limit %d", 10)
	require.True(Is(err, errTestA), "context wraps the coded error")
	require.False(Is(err, errTestB))
	require.Equal("test: error A: limit 10", err.Error())
	require.Equal("limit 10", Context(err))
	require.Equal("", Context(errTestB))

	module, code := Code(err)
	require.Equal(testModule, module)
	require.EqualValues(1, code)
}

func TestRegistration(t *testing.T) {
	require := require.New(t)

	require.Panics(func() { _ = New(testModule, 1, "duplicate") }, "duplicate registration")
	require.Panics(func() { _ = New(testModule, CodeNoError, "reserved") }, "reserved code")

	err, ok := Lookup(testModule, 2)
	require.True(ok)
	require.Equal(errTestB, err)

	_, ok = Lookup(testModule, 99)
	require.False(ok)
}
