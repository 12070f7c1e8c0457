package acl

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/clients/acl/prediction"
	"github.com/jsamuelsen11/task-classifier/internal/domain"
	"github.com/jsamuelsen11/task-classifier/internal/platform/httpclient"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ModelAdapter  = (*ModelServerClient)(nil)
	_ ports.ModelInfo     = (*ModelServerClient)(nil)
	_ ports.HealthChecker = (*ModelServerClient)(nil)
)

// predictionCacheSize bounds the memo of recent per-axis answers. A single
// classification asks for a label and then a confidence on each axis; the
// memo turns those four port calls into two HTTP round trips.
const predictionCacheSize = 1024

type predictionKey struct {
	axis prediction.Axis
	text string
}

// ModelServerClient is the outbound adapter for a model-serving sidecar. It
// implements [ports.ModelAdapter] by calling
// POST /v1/models/{priority|status}:predict.
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff, and OpenTelemetry tracing. While
// the breaker is open the client reports itself unavailable, so the
// classifier answers from heuristics without waiting on the network.
type ModelServerClient struct {
	client *httpclient.Client
	memo   *lru.Cache[predictionKey, prediction.Result]
	logger *slog.Logger
}

// NewModelServerClient creates a ModelServerClient that sends requests
// through the given [httpclient.Client], whose BaseURL should point at the
// model server root.
func NewModelServerClient(client *httpclient.Client, logger *slog.Logger) (*ModelServerClient, error) {
	memo, err := lru.New[predictionKey, prediction.Result](predictionCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating prediction memo: %w", err)
	}
	return &ModelServerClient{
		client: client,
		memo:   memo,
		logger: logger,
	}, nil
}

// Available reports false while the circuit breaker is open.
func (c *ModelServerClient) Available() bool {
	return c.client.Available()
}

// Location returns the model server base URL.
func (c *ModelServerClient) Location() string {
	return c.client.BaseURL()
}

// PredictPriority implements [ports.ModelAdapter].
func (c *ModelServerClient) PredictPriority(ctx context.Context, text string) (string, error) {
	r, err := c.predict(ctx, prediction.AxisPriority, text)
	return r.Label, err
}

// PredictStatus implements [ports.ModelAdapter].
func (c *ModelServerClient) PredictStatus(ctx context.Context, text string) (string, error) {
	r, err := c.predict(ctx, prediction.AxisStatus, text)
	return r.Label, err
}

// ConfidencePriority implements [ports.ModelAdapter]. It fails when the
// server omits a confidence.
func (c *ModelServerClient) ConfidencePriority(ctx context.Context, text string) (float64, error) {
	return c.confidence(ctx, prediction.AxisPriority, text)
}

// ConfidenceStatus implements [ports.ModelAdapter]. It fails when the server
// omits a confidence.
func (c *ModelServerClient) ConfidenceStatus(ctx context.Context, text string) (float64, error) {
	return c.confidence(ctx, prediction.AxisStatus, text)
}

func (c *ModelServerClient) confidence(ctx context.Context, axis prediction.Axis, text string) (float64, error) {
	r, err := c.predict(ctx, axis, text)
	if err != nil {
		return 0, err
	}
	if !r.HasConfidence {
		return 0, fmt.Errorf("model server returned no %s confidence: %w", axis, domain.ErrModelInference)
	}
	return r.Confidence, nil
}

func (c *ModelServerClient) predict(ctx context.Context, axis prediction.Axis, text string) (prediction.Result, error) {
	key := predictionKey{axis: axis, text: text}
	if r, ok := c.memo.Get(key); ok {
		return r, nil
	}

	var dto prediction.PredictResponseDTO
	if err := c.postJSON(ctx, axis.Path(), prediction.ToPredictRequest(text), &dto); err != nil {
		return prediction.Result{}, err
	}

	r, err := prediction.ToResult(dto)
	if err != nil {
		return prediction.Result{}, err
	}

	c.memo.Add(key, r)
	return r, nil
}
