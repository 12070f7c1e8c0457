package httpclient

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// Outbound header names carried from the inbound request to the model server.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// WithRequestID stores the inbound request ID so outbound calls repeat it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID so outbound calls repeat it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// propagate copies request metadata and the W3C trace context from ctx onto
// the outbound request headers. Empty values are not sent.
func propagate(ctx context.Context, h http.Header) {
	for name, key := range map[string]any{
		HeaderRequestID:     requestIDKey{},
		HeaderCorrelationID: correlationIDKey{},
	} {
		if v, _ := ctx.Value(key).(string); v != "" {
			h.Set(name, v)
		}
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(h))
}
