package clone

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/deepclone/value"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)

	RegisterMetrics()
	require.NotPanics(RegisterMetrics, "registration is idempotent")

	success := cloneOperations.With(prometheus.Labels{"result": "success"})
	failure := cloneOperations.With(prometheus.Labels{"result": "failure"})
	hosts := passthroughValues.With(prometheus.Labels{"kind": KindHost.String()})

	successBefore := testutil.ToFloat64(success)
	failureBefore := testutil.ToFloat64(failure)
	nodesBefore := testutil.ToFloat64(copiedNodes)
	hostsBefore := testutil.ToFloat64(hosts)

	_ = Clone(value.NewArray(value.NewArray(), value.Math))
	_, err := New(WithMaxNodes(1)).Clone(value.NewArray(value.NewArray()))
	require.Error(err)

	require.Equal(successBefore+1, testutil.ToFloat64(success))
	require.Equal(failureBefore+1, testutil.ToFloat64(failure))
	require.Equal(nodesBefore+4, testutil.ToFloat64(copiedNodes), "two copied nodes per operation")
	require.Equal(hostsBefore+1, testutil.ToFloat64(hosts))
}
