package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/task-classifier/internal/platform/config"
	"github.com/jsamuelsen11/task-classifier/internal/platform/httpclient"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// idProbe runs RequestID then CorrelationID and captures what the handler saw.
func idProbe(headers map[string]string) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	h := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		reqID = middleware.RequestIDFromContext(r.Context())
		corrID = middleware.CorrelationIDFromContext(r.Context())
	})))
	rec = serve(h, http.MethodPost, "/predict", headers)
	return reqID, corrID, rec
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "generated when absent"},
		{name: "inbound kept", header: "incoming-123", wantKept: true},
		{name: "control characters replaced", header: "abc\r\nX-Injected: 1"},
		{name: "spaces replaced", header: "has space"},
		{name: "oversized replaced", header: strings.Repeat("a", 129)},
		{name: "max length kept", header: strings.Repeat("a", 128), wantKept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			headers := map[string]string{}
			if tt.header != "" {
				headers["X-Request-Id"] = tt.header
			}
			reqID, _, rec := idProbe(headers)

			if tt.wantKept {
				assert.Equal(t, tt.header, reqID)
			} else {
				assert.Regexp(t, uuidV4, reqID)
			}
			assert.Equal(t, reqID, rec.Header().Get(httpclient.HeaderRequestID))
		})
	}
}

func TestRequestID_Unique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for range 100 {
		id, _, _ := idProbe(nil)
		seen[id] = true
	}
	assert.Len(t, seen, 100)
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		header        string
		wantRequestID bool
	}{
		{name: "inbound kept", header: "corr-abc"},
		{name: "absent falls back to request id", wantRequestID: true},
		{name: "malformed falls back to request id", header: "bad id", wantRequestID: true},
		{name: "oversized falls back to request id", header: strings.Repeat("c", 200), wantRequestID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			headers := map[string]string{}
			if tt.header != "" {
				headers["X-Correlation-Id"] = tt.header
			}
			reqID, corrID, rec := idProbe(headers)

			want := tt.header
			if tt.wantRequestID {
				want = reqID
			}
			require.NotEmpty(t, want)
			assert.Equal(t, want, corrID)
			assert.Equal(t, want, rec.Header().Get(httpclient.HeaderCorrelationID))
		})
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RequestIDFromContext(context.Background()))
	assert.Empty(t, middleware.CorrelationIDFromContext(context.Background()))
}

func TestIDs_ReachModelServer(t *testing.T) {
	t.Parallel()

	got := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(&config.ClientConfig{
		BaseURL:        srv.URL,
		Timeout:        time.Second,
		Retry:          config.RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	}, "model-server", nil, discardLogger())

	ctx := middleware.WithCorrelationID(middleware.WithRequestID(t.Context(), "req-out"), "corr-out")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, srv.URL+"/v1/models/status:predict", http.NoBody)
	require.NoError(t, err)

	resp, err := client.Do(ctx, req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	h := <-got
	assert.Equal(t, "req-out", h.Get(httpclient.HeaderRequestID))
	assert.Equal(t, "corr-out", h.Get(httpclient.HeaderCorrelationID))
}
