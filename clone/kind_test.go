package clone

import (
	"regexp"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/deepclone/value"
)

type namedInt int

type record struct {
	Name string
}

func TestKindOf(t *testing.T) {
	require := require.New(t)

	for _, tc := range []struct {
		v    any
		kind Kind
	}{
		{nil, KindPrimitive},
		{value.Undefined, KindPrimitive},
		{value.Null, KindPrimitive},
		{true, KindPrimitive},
		{10, KindPrimitive},
		{3.5, KindPrimitive},
		{namedInt(3), KindPrimitive},
		{"zhufeng", KindPrimitive},
		{value.NewSymbol("man"), KindPrimitive},
		{value.NewFunction("getName", nil), KindPrimitive},
		{func() {}, KindPrimitive},
		{time.Now(), KindPrimitive},
		{regexp.MustCompile("a"), KindPrimitive},
		{value.NewArray(), KindOrdered},
		{[]any{1}, KindOrdered},
		{value.NewObject(), KindKeyed},
		{map[string]any{}, KindKeyed},
		{value.NewMap(), KindMapping},
		{value.NewSet(), KindSet},
		{value.MustRegExp("^regexp$", "gi"), KindPattern},
		{value.NewDate(time.Now()), KindTimestamp},
		{value.NewError("error"), KindError},
		{value.Box(value.NewSymbol("x")), KindBoxedSymbol},
		{value.Math, KindHost},
		{value.Document, KindHost},
		{make(chan int), KindUnsupported},
		{&record{}, KindUnsupported},
		{record{}, KindUnsupported},
		{[]int{1}, KindUnsupported},
		{unsafe.Pointer(&record{}), KindUnsupported},
	} {
		require.Equal(tc.kind, KindOf(tc.v), "KindOf(%T)", tc.v)
	}
}

func TestKindString(t *testing.T) {
	require := require.New(t)

	require.Equal("mapping", KindMapping.String())
	require.Equal("boxed_symbol", KindBoxedSymbol.String())
	require.Equal("[unknown kind]", Kind(200).String())

	require.False(KindPrimitive.IsReferenceable())
	require.True(KindOrdered.IsReferenceable())
	require.True(KindBoxedSymbol.IsReferenceable())
	require.False(KindHost.IsReferenceable())
	require.False(KindUnsupported.IsReferenceable())
}
