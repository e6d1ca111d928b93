package value

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/oasisprotocol/deepclone/value/orderedmap"
)

type comparedPair struct {
	a, b any
}

type differ struct {
	compared map[comparedPair]struct{}
	errs     *multierror.Error
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b any) bool {
	return Diff(a, b) == nil
}

// Diff compares a and b structurally and returns an error describing
// every difference found, or nil if they are equal.
//
// Primitives are compared by value (NaN equals NaN) and functions,
// symbols and hosts by identity. Containers are compared by contents:
// elements, own enumerable properties (objects must also share their
// prototype), entries, pattern source/flags/cursor, time, error name and
// message. Cycles are handled by assuming that a pair of containers
// already under comparison is equal.
func Diff(a, b any) error {
	d := &differ{compared: make(map[comparedPair]struct{})}
	d.diff("$", a, b)
	return d.errs.ErrorOrNil()
}

func (d *differ) fail(path, format string, args ...any) {
	d.errs = multierror.Append(d.errs, fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...)))
}

// enter returns false if the pair was already compared.
func (d *differ) enter(a, b any) bool {
	key := comparedPair{orderedmap.KeyOf(a), orderedmap.KeyOf(b)}
	if _, ok := d.compared[key]; ok {
		return false
	}
	d.compared[key] = struct{}{}
	return true
}

func (d *differ) diff(path string, a, b any) {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		d.fail(path, "type mismatch: %T != %T", a, b)
		return
	}
	if a != nil && reflect.TypeOf(a).Kind() == reflect.Pointer {
		an, bn := reflect.ValueOf(a).IsNil(), reflect.ValueOf(b).IsNil()
		if an || bn {
			if an != bn {
				d.fail(path, "nil mismatch")
			}
			return
		}
	}

	switch av := a.(type) {
	case *Array:
		bv := b.(*Array)
		if !d.enter(av, bv) {
			return
		}
		d.diffSlices(path, av.elems, bv.elems)
	case []any:
		bv := b.([]any)
		if (av == nil) != (bv == nil) {
			d.fail(path, "nil mismatch")
			return
		}
		if cap(av) > 0 && cap(bv) > 0 && !d.enter(av, bv) {
			return
		}
		d.diffSlices(path, av, bv)
	case *Object:
		bv := b.(*Object)
		if !d.enter(av, bv) {
			return
		}
		if av.proto != bv.proto {
			d.fail(path, "prototype mismatch")
		}
		ak, bk := av.Keys(), bv.Keys()
		if !reflect.DeepEqual(ak, bk) {
			d.fail(path, "keys mismatch: %v != %v", ak, bk)
			return
		}
		for _, k := range ak {
			x, _ := av.GetOwn(k)
			y, _ := bv.GetOwn(k)
			d.diff(path+"."+k, x, y)
		}
	case map[string]any:
		bv := b.(map[string]any)
		if (av == nil) != (bv == nil) {
			d.fail(path, "nil mismatch")
			return
		}
		if av != nil && !d.enter(av, bv) {
			return
		}
		ak, bk := sortedKeys(av), sortedKeys(bv)
		if !reflect.DeepEqual(ak, bk) {
			d.fail(path, "keys mismatch: %v != %v", ak, bk)
			return
		}
		for _, k := range ak {
			d.diff(path+"."+k, av[k], bv[k])
		}
	case *Map:
		bv := b.(*Map)
		if !d.enter(av, bv) {
			return
		}
		ak, bk := av.Keys(), bv.Keys()
		if len(ak) != len(bk) {
			d.fail(path, "size mismatch: %d != %d", len(ak), len(bk))
			return
		}
		for i := range ak {
			kp := fmt.Sprintf("%s[%s]", path, Sprint(ak[i]))
			if orderedmap.KeyOf(ak[i]) != orderedmap.KeyOf(bk[i]) {
				d.fail(kp, "key mismatch: %s != %s", Sprint(ak[i]), Sprint(bk[i]))
				continue
			}
			x, _ := av.Get(ak[i])
			y, _ := bv.Get(bk[i])
			d.diff(kp, x, y)
		}
	case *Set:
		bv := b.(*Set)
		if !d.enter(av, bv) {
			return
		}
		ae, be := av.Values(), bv.Values()
		if len(ae) != len(be) {
			d.fail(path, "size mismatch: %d != %d", len(ae), len(be))
			return
		}
		for i := range ae {
			d.diff(fmt.Sprintf("%s{%d}", path, i), ae[i], be[i])
		}
	case *RegExp:
		bv := b.(*RegExp)
		if av.source != bv.source || av.flags != bv.flags {
			d.fail(path, "pattern mismatch: %s != %s", av, bv)
		}
		if av.lastIndex != bv.lastIndex {
			d.fail(path, "cursor mismatch: %d != %d", av.lastIndex, bv.lastIndex)
		}
	case *Date:
		bv := b.(*Date)
		if av.valid != bv.valid || !av.t.Equal(bv.t) {
			d.fail(path, "time mismatch: %s != %s", av, bv)
		}
	case *Error:
		bv := b.(*Error)
		if av.name != bv.name || av.message != bv.message {
			d.fail(path, "error mismatch: %q != %q", av.Error(), bv.Error())
		}
	case *BoxedSymbol:
		bv := b.(*BoxedSymbol)
		if av.sym != bv.sym {
			d.fail(path, "boxed symbol mismatch: %s != %s", av, bv)
		}
	default:
		if !samePrimitive(a, b) {
			d.fail(path, "value mismatch: %s != %s", Sprint(a), Sprint(b))
		}
	}
}

func (d *differ) diffSlices(path string, a, b []any) {
	if len(a) != len(b) {
		d.fail(path, "length mismatch: %d != %d", len(a), len(b))
		return
	}
	for i := range a {
		d.diff(fmt.Sprintf("%s[%d]", path, i), a[i], b[i])
	}
}

// samePrimitive compares two values of the same dynamic type.
func samePrimitive(a, b any) bool {
	if a == nil {
		return b == nil
	}

	switch av := a.(type) {
	case float64:
		bv := b.(float64)
		return av == bv || (math.IsNaN(av) && math.IsNaN(bv))
	case float32:
		bv := b.(float32)
		return av == bv || (av != av && bv != bv)
	}

	t := reflect.TypeOf(a)
	switch {
	case t.Kind() == reflect.Func:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case t.Comparable():
		return a == b
	default:
		return reflect.DeepEqual(a, b)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
