package clone

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	cloneOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deepclone_clone_operations",
			Help: "Number of clone operations by result.",
		},
		[]string{"result"},
	)
	copiedNodes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deepclone_copied_nodes",
			Help: "Number of referenceable values copied.",
		},
	)
	passthroughValues = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deepclone_passthrough_values",
			Help: "Number of referenceable values returned unchanged, by kind.",
		},
		[]string{"kind"},
	)
	cloneCollectors = []prometheus.Collector{
		cloneOperations,
		copiedNodes,
		passthroughValues,
	}

	metricsOnce sync.Once
)

// RegisterMetrics registers the cloner metrics with the default
// Prometheus registry. It is safe to call multiple times.
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(cloneCollectors...)
	})
}
