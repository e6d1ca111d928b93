package clone

import (
	"fmt"
	"reflect"

	"github.com/gammazero/deque"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/oasisprotocol/deepclone/common/errors"
	"github.com/oasisprotocol/deepclone/value"
)

// task is a shell waiting to be populated from its source. Tasks are
// processed in breadth-first order, so depth is the shortest path from
// the root.
type task struct {
	src   any
	dst   any
	depth int
}

type mapIdentity uintptr

type sliceIdentity struct {
	ptr      uintptr
	len, cap int
}

// state is the state of a single clone operation.
type state struct {
	cloner *Cloner

	// visited maps the identity of every source value copied so far to
	// its copy, which may still be waiting to be populated.
	visited map[any]any
	pending *deque.Deque[task]
	nodes   int
}

func newState(c *Cloner) *state {
	return &state{
		cloner:  c,
		visited: make(map[any]any),
		pending: deque.New[task](),
	}
}

func (s *state) run(root any) (any, error) {
	out, err := s.copyOf(root, 1)
	if err != nil {
		return nil, err
	}

	for s.pending.Len() > 0 {
		if err = s.populate(s.pending.PopFront()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// identity returns the key under which v is recorded in the visited map,
// or false if v has no identity worth recording.
func identity(v any) (any, bool) {
	switch vv := v.(type) {
	case map[string]any:
		return mapIdentity(reflect.ValueOf(vv).Pointer()), true
	case []any:
		if cap(vv) == 0 {
			// Nothing can alias or reference an empty backing array.
			return nil, false
		}
		return sliceIdentity{reflect.ValueOf(vv).Pointer(), len(vv), cap(vv)}, true
	default:
		// Pointers are comparable by identity.
		return v, true
	}
}

func isNil(v any) bool {
	switch vv := v.(type) {
	case []any:
		return vv == nil
	case map[string]any:
		return vv == nil
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// copyOf returns the copy of v at the given depth. A referenceable value
// seen for the first time gets a shell that is recorded as visited before
// it is scheduled for population.
func (s *state) copyOf(v any, depth int) (any, error) {
	kind := KindOf(v)
	switch {
	case kind == KindPrimitive:
		return v, nil
	case !kind.IsReferenceable():
		s.passthrough(kind, v)
		return v, nil
	case isNil(v):
		return v, nil
	}

	id, hasIdentity := identity(v)
	if hasIdentity {
		if cp, ok := s.visited[id]; ok {
			return cp, nil
		}
	}

	if s.cloner.maxDepth > 0 && depth > s.cloner.maxDepth {
		return nil, errors.WithContextf(ErrDepthExceeded, "limit %d", s.cloner.maxDepth)
	}
	s.nodes++
	if s.cloner.maxNodes > 0 && s.nodes > s.cloner.maxNodes {
		return nil, errors.WithContextf(ErrSizeExceeded, "limit %d", s.cloner.maxNodes)
	}

	shell, populate, err := newShell(kind, v)
	if err != nil {
		return nil, err
	}
	if hasIdentity {
		s.visited[id] = shell
	}
	if populate {
		s.pending.PushBack(task{src: v, dst: shell, depth: depth})
	}
	return shell, nil
}

// newShell allocates an empty value of the same runtime category as v.
// Terminal kinds are returned complete and need no population.
func newShell(kind Kind, v any) (any, bool, error) {
	switch src := v.(type) {
	case *value.Array:
		return value.NewArrayLen(src.Len()), true, nil
	case []any:
		return make([]any, len(src)), true, nil
	case *value.Object:
		return value.NewObjectWithProto(src.Proto()), true, nil
	case map[string]any:
		return make(map[string]any, len(src)), true, nil
	case *value.Map:
		return value.NewMap(), true, nil
	case *value.Set:
		return value.NewSet(), true, nil
	case *value.RegExp:
		re, err := value.NewRegExp(src.Source(), src.Flags())
		if err != nil {
			return nil, false, err
		}
		// The cursor is not part of the pattern.
		re.SetLastIndex(src.LastIndex())
		return re, false, nil
	case *value.Date:
		return value.NewDateFrom(src), false, nil
	case *value.Error:
		return value.NewErrorFrom(src), false, nil
	case *value.BoxedSymbol:
		return value.Box(src.Unbox()), false, nil
	default:
		panic(fmt.Errorf("clone: no shell for kind %s (%T)", kind, v))
	}
}

func (s *state) populate(t task) error {
	depth := t.depth + 1

	switch src := t.src.(type) {
	case *value.Array:
		dst := t.dst.(*value.Array)
		for i := 0; i < src.Len(); i++ {
			cp, err := s.copyOf(src.Get(i), depth)
			if err != nil {
				return err
			}
			dst.Set(i, cp)
		}
	case []any:
		dst := t.dst.([]any)
		for i, elem := range src {
			cp, err := s.copyOf(elem, depth)
			if err != nil {
				return err
			}
			dst[i] = cp
		}
	case *value.Object:
		dst := t.dst.(*value.Object)
		for _, key := range src.Keys() {
			member, _ := src.GetOwn(key)
			cp, err := s.copyOf(member, depth)
			if err != nil {
				return err
			}
			dst.Set(key, cp)
		}
	case map[string]any:
		dst := t.dst.(map[string]any)
		for key, member := range src {
			cp, err := s.copyOf(member, depth)
			if err != nil {
				return err
			}
			dst[key] = cp
		}
	case *value.Map:
		dst := t.dst.(*value.Map)
		var err error
		src.Range(func(key, v any) bool {
			var cp any
			if cp, err = s.copyOf(v, depth); err != nil {
				return false
			}
			// Keys are carried over unchanged.
			dst.Set(key, cp)
			return true
		})
		return err
	case *value.Set:
		dst := t.dst.(*value.Set)
		var err error
		src.Range(func(elem any) bool {
			var cp any
			if cp, err = s.copyOf(elem, depth); err != nil {
				return false
			}
			dst.Add(cp)
			return true
		})
		return err
	default:
		panic(fmt.Errorf("clone: unexpected pending value: %T", t.src))
	}
	return nil
}

func (s *state) passthrough(kind Kind, v any) {
	passthroughValues.With(prometheus.Labels{"kind": kind.String()}).Inc()
	if kind == KindUnsupported && s.cloner.logger.IsDebug() {
		s.cloner.logger.Debug("passing through value of unsupported type",
			"type", fmt.Sprintf("%T", v),
		)
	}
}
