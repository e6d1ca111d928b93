// Package clone implements a deep-copy engine for heterogeneous value
// graphs.
//
// A clone is structurally equal to its source but shares no mutable
// state with it: every referenceable value reachable from the source
// (see KindOf) is copied exactly once. Aliasing inside the graph is
// preserved, so two references to the same source value map to the same
// copy, and cycles terminate by resolving to the copy under
// construction. Primitives, environment singletons and values of
// unsupported types are returned unchanged.
//
// Cloning uses an explicit work queue rather than recursion, so the
// depth of a value graph is bounded only by the configured limits.
package clone

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/oasisprotocol/deepclone/common/logging"
)

var defaultCloner = New()

// Cloner is a configured deep-copy engine.
//
// A Cloner is immutable and safe for concurrent use. Every clone
// operation owns its state.
type Cloner struct {
	logger *logging.Logger

	maxDepth int
	maxNodes int
}

// Clone returns a deep copy of v.
//
// If a configured limit is exceeded, Clone returns ErrDepthExceeded or
// ErrSizeExceeded and no copy.
func (c *Cloner) Clone(v any) (any, error) {
	s := newState(c)
	out, err := s.run(v)

	copiedNodes.Add(float64(s.nodes))
	if err != nil {
		cloneOperations.With(prometheus.Labels{"result": "failure"}).Inc()
		c.logger.Debug("clone failed",
			"err", err,
			"copied_nodes", s.nodes,
		)
		return nil, err
	}
	cloneOperations.With(prometheus.Labels{"result": "success"}).Inc()

	return out, nil
}

// Option is a configuration option used when creating a Cloner.
type Option func(c *Cloner)

// WithMaxDepth limits the nesting depth of referenceable values, measured
// as the shortest path from the root. The root is at depth one. Zero
// means unlimited.
func WithMaxDepth(depth int) Option {
	return func(c *Cloner) {
		c.maxDepth = depth
	}
}

// WithMaxNodes limits the number of referenceable values copied by a
// single clone operation. Zero means unlimited.
func WithMaxNodes(nodes int) Option {
	return func(c *Cloner) {
		c.maxNodes = nodes
	}
}

// WithLogger sets the logger used by the cloner.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Cloner) {
		c.logger = logger
	}
}

// New creates a new Cloner.
func New(options ...Option) *Cloner {
	c := &Cloner{
		logger: logging.GetLogger(ModuleName),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Clone returns a deep copy of v using an unlimited cloner. It never
// fails.
func Clone(v any) any {
	out, err := defaultCloner.Clone(v)
	if err != nil {
		// The default cloner has no limits.
		panic(err)
	}
	return out
}

// Must returns a deep copy of v with the same static type.
func Must[T any](v T) T {
	out := Clone(v)
	if out == nil {
		var zero T
		return zero
	}
	return out.(T)
}
