package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/replicore/netdecode/internal/metrics"
)

func TestNilRecorderMethodsDoNotPanic(t *testing.T) {
	var m *metrics.Recorder

	require.NotPanics(t, func() {
		m.RecordDecoded()
		m.RecordDropped("ShortRead")
		m.RecordRecovered("UnknownProperty")
	})
}

func TestRecordDroppedIncrementsByReason(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.RecordDropped("ShortRead")
	m.RecordDropped("ShortRead")
	m.RecordDropped("MalformedFlag")

	require.Equal(t, float64(2), counterValue(t, m.PacketsDropped, "ShortRead"))
	require.Equal(t, float64(1), counterValue(t, m.PacketsDropped, "MalformedFlag"))
}

func counterValue(t *testing.T, cv *prometheus.CounterVec, label string) float64 {
	t.Helper()
	counter, err := cv.GetMetricWithLabelValues(label)
	require.NoError(t, err)
	var metric io_prometheus_client.Metric
	require.NoError(t, counter.Write(&metric))
	return metric.GetCounter().GetValue()
}
