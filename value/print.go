package value

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/oasisprotocol/deepclone/common/prettyprint"
)

var (
	_ prettyprint.PrettyPrinter = (*Array)(nil)
	_ prettyprint.PrettyPrinter = (*Object)(nil)
	_ prettyprint.PrettyPrinter = (*Map)(nil)
	_ prettyprint.PrettyPrinter = (*Set)(nil)
	_ prettyprint.PrettyPrinter = (*RegExp)(nil)
	_ prettyprint.PrettyPrinter = (*Date)(nil)
	_ prettyprint.PrettyPrinter = (*Error)(nil)
	_ prettyprint.PrettyPrinter = (*BoxedSymbol)(nil)
)

type printer struct {
	b strings.Builder

	// Containers on the path from the root to the value being printed.
	ancestors map[any]struct{}
}

// Sprint renders v on a single line. References back to a container
// that is still being printed are rendered as [Circular].
func Sprint(v any) string {
	p := &printer{ancestors: make(map[any]struct{})}
	p.print(v)
	return p.b.String()
}

func (p *printer) enter(id any) bool {
	if _, ok := p.ancestors[id]; ok {
		p.b.WriteString("[Circular]")
		return false
	}
	p.ancestors[id] = struct{}{}
	return true
}

func (p *printer) leave(id any) {
	delete(p.ancestors, id)
}

func (p *printer) list(start, end string, n int, item func(i int)) {
	if n == 0 {
		p.b.WriteString(start + end)
		return
	}
	p.b.WriteString(start + " ")
	for i := 0; i < n; i++ {
		if i > 0 {
			p.b.WriteString(", ")
		}
		item(i)
	}
	p.b.WriteString(" " + end)
}

func (p *printer) print(v any) {
	switch vv := v.(type) {
	case nil:
		p.b.WriteString("undefined")
	case marker:
		p.b.WriteString(vv.String())
	case string:
		p.b.WriteString("'" + strings.ReplaceAll(vv, "'", `\'`) + "'")
	case *Array:
		if vv == nil {
			p.b.WriteString("<nil>")
			return
		}
		if !p.enter(vv) {
			return
		}
		defer p.leave(vv)
		p.list("[", "]", vv.Len(), func(i int) { p.print(vv.elems[i]) })
	case []any:
		if vv == nil {
			p.b.WriteString("[]")
			return
		}
		id := sliceIdentity(vv)
		if id != nil {
			if !p.enter(id) {
				return
			}
			defer p.leave(id)
		}
		p.list("[", "]", len(vv), func(i int) { p.print(vv[i]) })
	case *Object:
		if vv == nil {
			p.b.WriteString("<nil>")
			return
		}
		if !p.enter(vv) {
			return
		}
		defer p.leave(vv)
		keys := vv.Keys()
		p.list("{", "}", len(keys), func(i int) {
			v, _ := vv.GetOwn(keys[i])
			p.b.WriteString(keys[i] + ": ")
			p.print(v)
		})
	case map[string]any:
		if vv == nil {
			p.b.WriteString("{}")
			return
		}
		id := reflect.ValueOf(vv).Pointer()
		if !p.enter(id) {
			return
		}
		defer p.leave(id)
		keys := make([]string, 0, len(vv))
		for k := range vv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		p.list("{", "}", len(keys), func(i int) {
			p.b.WriteString(keys[i] + ": ")
			p.print(vv[keys[i]])
		})
	case *Map:
		if vv == nil {
			p.b.WriteString("<nil>")
			return
		}
		if !p.enter(vv) {
			return
		}
		defer p.leave(vv)
		fmt.Fprintf(&p.b, "Map(%d) ", vv.Len())
		keys := vv.Keys()
		p.list("{", "}", len(keys), func(i int) {
			v, _ := vv.Get(keys[i])
			p.print(keys[i])
			p.b.WriteString(" => ")
			p.print(v)
		})
	case *Set:
		if vv == nil {
			p.b.WriteString("<nil>")
			return
		}
		if !p.enter(vv) {
			return
		}
		defer p.leave(vv)
		fmt.Fprintf(&p.b, "Set(%d) ", vv.Len())
		elems := vv.Values()
		p.list("{", "}", len(elems), func(i int) { p.print(elems[i]) })
	case *RegExp:
		p.b.WriteString(vv.String())
	case *Date:
		p.b.WriteString(vv.String())
	case *Error:
		p.b.WriteString(vv.Error())
	case *BoxedSymbol:
		p.b.WriteString(vv.String())
	case *Symbol:
		p.b.WriteString(vv.String())
	case *Function:
		p.b.WriteString(vv.String())
	case *Host:
		p.b.WriteString(vv.String())
	default:
		if v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
			p.b.WriteString("[Function (native)]")
			return
		}
		fmt.Fprintf(&p.b, "%v", v)
	}
}

// sliceIdentity returns the identity of a slice, or nil for slices
// without a backing array.
func sliceIdentity(s []any) any {
	if cap(s) == 0 {
		return nil
	}
	type sliceID struct {
		ptr      uintptr
		len, cap int
	}
	return sliceID{reflect.ValueOf(s).Pointer(), len(s), cap(s)}
}
