package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestOTelMetrics_RecordCheck(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewOTelMetrics(provider.Meter("test"))
	require.NoError(t, err)

	m.RecordCheck("string", OutcomePassed)
	m.RecordCheck("string", OutcomePassed)
	m.RecordCheck("string", OutcomeFailed)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	got := rm.ScopeMetrics[0].Metrics[0]
	assert.Equal(t, ChecksCounterName, got.Name)

	sum, ok := got.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.True(t, sum.IsMonotonic)

	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
		expression, _ := dp.Attributes.Value(attribute.Key("expression"))
		counts[expression.AsString()+":"+outcome.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{
		"string:passed": 2,
		"string:failed": 1,
	}, counts)
}
