// Package httpclient is the outbound HTTP client for the model-serving
// sidecar. Each call passes through, in order:
//
//	breaker → rate limiter → header propagation → client span → retry → transport
//
// The breaker only counts failures the model server is responsible for; a
// caller that gives up (context canceled) does not push it toward open.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/task-classifier/internal/platform/config"
	"github.com/jsamuelsen11/task-classifier/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/task-classifier/internal/platform/httpclient"

// Metric result values.
const (
	resultSuccess     = "success"
	resultError       = "error"
	resultCircuitOpen = "circuit_open"
)

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryConfig(c config.RetryConfig) retryConfig {
	return retryConfig{
		maxAttempts:     c.MaxAttempts,
		initialInterval: c.InitialInterval,
		maxInterval:     c.MaxInterval,
		multiplier:      c.Multiplier,
	}
}

// Client sends requests to one downstream service.
type Client struct {
	http     *http.Client
	baseURL  string
	peer     string
	breaker  *gobreaker.CircuitBreaker[struct{}]
	limiter  *rate.Limiter // nil: unlimited
	retryCfg retryConfig
	tracer   trace.Tracer
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New builds a Client for the service named peer (used as the breaker name,
// the peer.service attribute, and the health checker name). metrics may be nil.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:     &http.Client{Timeout: cfg.Timeout},
		baseURL:  cfg.BaseURL,
		peer:     peer,
		retryCfg: newRetryConfig(cfg.Retry),
		tracer:   otel.GetTracerProvider().Tracer(tracerName),
		metrics:  metrics,
		logger:   logger,
	}

	maxFailures := uint32(clamp(cfg.CircuitBreaker.MaxFailures))
	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        peer,
		MaxRequests: uint32(clamp(cfg.CircuitBreaker.HalfOpenLimit)),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("model server breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), cfg.RateLimit.BurstSize)
	}

	return c
}

// Do sends req. A response whose status is not retryable is returned with a
// nil error and an open body. When retries run out on a retryable status both
// the last response and an error are returned; the caller closes the body in
// either case. Breaker rejections and transport failures return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, fmt.Errorf("rate limit: %w", err)
			}
		}

		ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.peer,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.method", req.Method),
				attribute.String("http.url", req.URL.String()),
				attribute.String("peer.service", c.peer),
			),
		)
		defer span.End()

		propagate(ctx, req.Header)
		req = req.WithContext(ctx)

		err := c.doWithRetry(ctx, req, &resp)
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return struct{}{}, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Name returns the peer name. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string { return c.peer }

// HealthCheck derives readiness from the breaker state without a network
// call: closed is healthy, half-open is degraded, open is failing.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.peer)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.peer)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.peer, state)
	}
}

// Available is false only while the breaker is open.
func (c *Client) Available() bool {
	return c.breaker.State() != gobreaker.StateOpen
}

func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrResult.String(outcome(status, err)),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func outcome(status int, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return resultCircuitOpen
	case status > 0 && status < http.StatusBadRequest:
		return resultSuccess
	default:
		return resultError
	}
}

// clamp bounds v to [0, MaxUint32].
func clamp(v int) int64 {
	return min(max(int64(v), 0), math.MaxUint32)
}
