package orderedmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedMapBasic(t *testing.T) {
	require := require.New(t)

	m := New[int]()
	require.EqualValues(0, m.Len(), "Len of empty map")

	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	require.Equal([]any{"b", "a", "c"}, m.Keys(), "insertion order")

	m.Set("b", 10)
	require.Equal([]any{"b", "a", "c"}, m.Keys(), "update keeps position")
	v, ok := m.Get("b")
	require.True(ok, "Get existing")
	require.EqualValues(10, v, "updated value")

	_, ok = m.Get("missing")
	require.False(ok, "Get missing")

	require.True(m.Delete("a"), "Delete existing")
	require.False(m.Delete("a"), "Delete twice")
	require.Equal([]any{"b", "c"}, m.Keys(), "order after Delete")

	m.Set("a", 4)
	require.Equal([]any{"b", "c", "a"}, m.Keys(), "re-inserted key goes last")

	m.Clear()
	require.EqualValues(0, m.Len(), "Len after Clear")
	require.False(m.Has("b"), "Has after Clear")
}

func TestOrderedMapSameValueZero(t *testing.T) {
	require := require.New(t)

	m := New[string]()
	m.Set(math.NaN(), "nan")
	m.Set(math.NaN(), "nan2")
	require.EqualValues(1, m.Len(), "all NaNs are one key")
	v, _ := m.Get(math.NaN())
	require.Equal("nan2", v)

	m.Set(math.Copysign(0, -1), "zero")
	require.True(m.Has(float64(0)), "-0 and +0 are one key")
	keys := m.Keys()
	require.False(math.Signbit(keys[1].(float64)), "-0 is stored as +0")

	m.Set(1, "int")
	m.Set(float64(1), "float")
	require.EqualValues(4, m.Len(), "distinct Go types are distinct keys")
}

func TestOrderedMapIdentityKeys(t *testing.T) {
	require := require.New(t)

	a := []any{1}
	b := []any{1}
	ma := map[string]any{"x": 1}

	m := New[int]()
	m.Set(a, 1)
	m.Set(b, 2)
	m.Set(ma, 3)
	require.EqualValues(3, m.Len(), "slices with equal contents are distinct keys")

	v, ok := m.Get(a)
	require.True(ok)
	require.EqualValues(1, v)
	v, ok = m.Get(ma)
	require.True(ok)
	require.EqualValues(3, v)

	type unhashable struct{ s []int }
	require.Panics(func() { m.Set(unhashable{}, 0) }, "struct with slice has no identity")
}

func TestOrderedMapRange(t *testing.T) {
	require := require.New(t)

	m := New[int]()
	for i, k := range []string{"a", "b", "c", "d"} {
		m.Set(k, i)
	}

	var seen []any
	m.Range(func(key any, value int) bool {
		seen = append(seen, key)
		if key == "a" {
			m.Delete("c")
			m.Set("e", 99)
		}
		return true
	})
	require.Equal([]any{"a", "b", "d"}, seen, "deleted entries are skipped, added entries are not visited")

	seen = nil
	m.Range(func(key any, value int) bool {
		seen = append(seen, key)
		return len(seen) < 2
	})
	require.Len(seen, 2, "Range stops when fn returns false")
}
