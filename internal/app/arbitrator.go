// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/task-classifier/internal/app/fanout"
	"github.com/jsamuelsen11/task-classifier/internal/domain"
	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
	"github.com/jsamuelsen11/task-classifier/internal/domain/heuristic"
	"github.com/jsamuelsen11/task-classifier/internal/platform/logging"
	"github.com/jsamuelsen11/task-classifier/internal/platform/telemetry"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

// Compile-time check that Arbitrator implements ports.Classifier.
var _ ports.Classifier = (*Arbitrator)(nil)

const (
	// fallbackAxisConfidence replaces a model confidence that could not be
	// computed for one axis.
	fallbackAxisConfidence = 0.7

	defaultBatchWorkers = 4
)

// Arbitrator decides, per request, whether the learned model or the keyword
// heuristic answers. It never returns an error: every failure below it is
// logged and absorbed into a heuristic result.
type Arbitrator struct {
	model   ports.ModelAdapter
	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	timeout time.Duration
	workers int
}

// ArbitratorOption configures an Arbitrator.
type ArbitratorOption func(*Arbitrator)

// WithModelTimeout bounds the total time spent in model calls for one
// classification. Zero means no extra deadline.
func WithModelTimeout(d time.Duration) ArbitratorOption {
	return func(a *Arbitrator) { a.timeout = d }
}

// WithMetrics records one prediction sample per classification.
func WithMetrics(m *telemetry.Metrics) ArbitratorOption {
	return func(a *Arbitrator) { a.metrics = m }
}

// WithBatchWorkers caps the goroutines used by ClassifyBatch.
func WithBatchWorkers(n int) ArbitratorOption {
	return func(a *Arbitrator) {
		if n > 0 {
			a.workers = n
		}
	}
}

// NewArbitrator creates an Arbitrator. A nil model behaves like a model that
// is never available; a nil logger discards.
func NewArbitrator(model ports.ModelAdapter, logger *slog.Logger, opts ...ArbitratorOption) *Arbitrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &Arbitrator{
		model:   model,
		logger:  logger,
		tracer:  otel.GetTracerProvider().Tracer("github.com/jsamuelsen11/task-classifier/internal/app"),
		workers: defaultBatchWorkers,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Classify returns the classification for text. The result always carries
// labels from the fixed label sets and a confidence in [0, 1].
func (a *Arbitrator) Classify(ctx context.Context, text string) classification.Result {
	ctx, span := a.tracer.Start(ctx, "Arbitrator.Classify")
	defer span.End()

	result := a.classify(ctx, text).Sanitize()

	span.SetAttributes(telemetry.AttrSource.String(result.Source.String()))
	a.metrics.RecordPrediction(ctx, result.Source.String(), result.Confidence)

	return result
}

// ClassifyBatch classifies every text concurrently and returns results in
// input order. Items not reached before ctx is canceled are answered by the
// heuristic.
func (a *Arbitrator) ClassifyBatch(ctx context.Context, texts []string) []classification.Result {
	outcomes := fanout.Run(ctx, a.workers, texts, func(ctx context.Context, text string) (classification.Result, error) {
		return a.Classify(ctx, text), nil
	})

	results := make([]classification.Result, len(outcomes))
	for i, o := range outcomes {
		if o.Err != nil {
			results[i] = heuristic.Score(texts[i]).Sanitize()
			continue
		}
		results[i] = o.Value
	}
	return results
}

func (a *Arbitrator) classify(ctx context.Context, text string) classification.Result {
	if strings.TrimSpace(text) == "" {
		return classification.Default()
	}

	model := a.snapshot()
	if !a.modelAvailable(ctx, model, text) {
		return heuristic.Score(text)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	priority, status, err := predictLabels(ctx, model, text)
	if err != nil {
		a.warnFallback(ctx, text, "model prediction failed, using heuristic", err)
		return heuristic.Score(text)
	}

	pc := a.axisConfidence(ctx, text, "priority", model.ConfidencePriority)
	sc := a.axisConfidence(ctx, text, "status", model.ConfidenceStatus)

	return classification.Result{
		Priority:           priority,
		Status:             status,
		Source:             classification.SourceModel,
		Confidence:         classification.Round2((pc + sc) / 2),
		PriorityConfidence: &pc,
		StatusConfidence:   &sc,
	}
}

// snapshot pins the model for one classification.
func (a *Arbitrator) snapshot() ports.ModelAdapter {
	if s, ok := a.model.(ports.ModelSnapshotter); ok {
		return s.Snapshot()
	}
	return a.model
}

func (a *Arbitrator) modelAvailable(ctx context.Context, model ports.ModelAdapter, text string) bool {
	if model == nil {
		return false
	}

	ok, err := guard(func() (bool, error) { return model.Available(), nil })
	if err != nil {
		a.warnFallback(ctx, text, "model availability check failed, using heuristic", err)
		return false
	}
	return ok
}

// predictLabels asks the model for both labels. A label outside its label set
// rejects the whole pair; there is no per-axis repair.
func predictLabels(
	ctx context.Context,
	model ports.ModelAdapter,
	text string,
) (classification.Priority, classification.Status, error) {
	rawPriority, err := guard(func() (string, error) { return model.PredictPriority(ctx, text) })
	if err != nil {
		return "", "", fmt.Errorf("%w: priority: %w", domain.ErrModelInference, err)
	}

	rawStatus, err := guard(func() (string, error) { return model.PredictStatus(ctx, text) })
	if err != nil {
		return "", "", fmt.Errorf("%w: status: %w", domain.ErrModelInference, err)
	}

	priority := classification.Priority(rawPriority)
	if !priority.IsValid() {
		return "", "", &domain.LabelError{Axis: "priority", Value: rawPriority}
	}

	status := classification.Status(rawStatus)
	if !status.IsValid() {
		return "", "", &domain.LabelError{Axis: "status", Value: rawStatus}
	}

	return priority, status, nil
}

// axisConfidence returns the model confidence for one axis, or 0.7 when it
// cannot be computed or is not a usable probability.
func (a *Arbitrator) axisConfidence(
	ctx context.Context,
	text, axis string,
	fn func(context.Context, string) (float64, error),
) float64 {
	c, err := guard(func() (float64, error) { return fn(ctx, text) })
	if err == nil && !classification.ValidConfidence(c) {
		err = fmt.Errorf("%w: %s confidence %v out of range", domain.ErrModelInference, axis, c)
	}
	if err != nil {
		a.warnFallback(ctx, text, "model confidence failed, using fixed value", err,
			slog.String("axis", axis),
			slog.Float64("confidence", fallbackAxisConfidence),
		)
		return fallbackAxisConfidence
	}
	return c
}

func (a *Arbitrator) warnFallback(ctx context.Context, text, msg string, err error, attrs ...any) {
	args := []any{
		slog.String("operation", "Classify"),
		logging.Preview(text),
		slog.Any("error", err),
	}
	a.logger.WarnContext(ctx, msg, append(args, attrs...)...)
}

// guard runs fn and converts a panic into an ErrModelInference error so that
// a misbehaving adapter cannot take the request down.
func guard[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v = zero
			err = fmt.Errorf("%w: panic: %v", domain.ErrModelInference, r)
		}
	}()
	return fn()
}
