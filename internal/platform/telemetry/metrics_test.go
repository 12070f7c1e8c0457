package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/task-classifier/internal/platform/telemetry"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestNewMetrics_RegistersInstruments(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(), "task-classifier")
	require.NoError(t, err)

	assert.NotNil(t, m.ServerRequestDuration)
	assert.NotNil(t, m.ServerRequestTotal)
	assert.NotNil(t, m.ClientRequestDuration)
	assert.NotNil(t, m.ClientRequestTotal)
	assert.NotNil(t, m.PredictionTotal)
	assert.NotNil(t, m.PredictionConfidence)
}

func TestRecordPrediction(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	m, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "task-classifier")
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordPrediction(ctx, "heuristic", 0.95)
	m.RecordPrediction(ctx, "heuristic", 0.5)
	m.RecordPrediction(ctx, "model", 0.81)

	got := collect(t, reader)

	total, ok := got["classifier.predictions.total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	bySource := map[string]int64{}
	for _, dp := range total.DataPoints {
		source, _ := dp.Attributes.Value(telemetry.AttrSource)
		service, _ := dp.Attributes.Value(telemetry.AttrService)
		assert.Equal(t, "task-classifier", service.AsString())
		bySource[source.AsString()] += dp.Value
	}
	assert.Equal(t, map[string]int64{"heuristic": 2, "model": 1}, bySource)

	conf, ok := got["classifier.prediction.confidence"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	for _, dp := range conf.DataPoints {
		assert.Equal(t, []float64{0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 1}, dp.Bounds)
		if src, _ := dp.Attributes.Value(telemetry.AttrSource); src.AsString() == "model" {
			assert.Equal(t, uint64(1), dp.Count)
		}
	}
}

func TestRecordPrediction_NilMetrics(t *testing.T) {
	t.Parallel()

	var m *telemetry.Metrics
	assert.NotPanics(t, func() { m.RecordPrediction(context.Background(), "heuristic", 0.5) })
}
