package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterScope = "github.com/jsamuelsen11/task-classifier"

// Attribute keys shared by the instruments.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrService     = attribute.Key("service.name")
	AttrSource      = attribute.Key("classifier.source")
)

// confidenceBuckets puts boundaries at the fixed confidences the classifier
// emits: 0.5 for defaults, 0.7 for a missing axis, 0.95 for the heuristic cap.
var confidenceBuckets = []float64{0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 1}

// Metrics holds the registered instruments. A nil *Metrics records nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	PredictionTotal       metric.Int64Counter
	PredictionConfidence  metric.Float64Histogram

	serviceName string
}

// NewMetrics registers every instrument on mp. serviceName labels the
// prediction series so several deployments can share a backend.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(meterScope)
	m := &Metrics{serviceName: serviceName}

	var err error
	histogram := func(dst *metric.Float64Histogram, name, desc, unit string, opts ...metric.Float64HistogramOption) {
		if err != nil {
			return
		}
		opts = append(opts, metric.WithDescription(desc), metric.WithUnit(unit))
		if *dst, err = meter.Float64Histogram(name, opts...); err != nil {
			err = fmt.Errorf("creating %s: %w", name, err)
		}
	}
	counter := func(dst *metric.Int64Counter, name, desc, unit string) {
		if err != nil {
			return
		}
		if *dst, err = meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit)); err != nil {
			err = fmt.Errorf("creating %s: %w", name, err)
		}
	}

	histogram(&m.ServerRequestDuration, "http.server.request.duration", "Duration of inbound HTTP requests", "s")
	counter(&m.ServerRequestTotal, "http.server.request.total", "Inbound HTTP requests", "{request}")
	histogram(&m.ClientRequestDuration, "http.client.request.duration", "Duration of model server calls", "s")
	counter(&m.ClientRequestTotal, "http.client.request.total", "Model server calls", "{request}")
	counter(&m.PredictionTotal, "classifier.predictions.total", "Classifications by result source", "{prediction}")
	histogram(&m.PredictionConfidence, "classifier.prediction.confidence", "Confidence of returned classifications", "1",
		metric.WithExplicitBucketBoundaries(confidenceBuckets...))

	if err != nil {
		return nil, err
	}
	return m, nil
}

// RecordPrediction counts one classification and its confidence.
func (m *Metrics) RecordPrediction(ctx context.Context, source string, confidence float64) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		AttrSource.String(source),
		AttrService.String(m.serviceName),
	)
	m.PredictionTotal.Add(ctx, 1, attrs)
	m.PredictionConfidence.Record(ctx, confidence, attrs)
}
