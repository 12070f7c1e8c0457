package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/task-classifier/internal/adapters/http"
	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
	"github.com/jsamuelsen11/task-classifier/internal/platform/config"
	"github.com/jsamuelsen11/task-classifier/mocks"
)

var testCORS = config.CORSConfig{
	AllowedOrigins: []string{"http://localhost:3000"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders: []string{"Content-Type"},
}

type testDeps struct {
	classifier *mocks.MockClassifier
	registry   *mocks.MockHealthRegistry
	model      *mocks.MockModelInfo
	history    *mocks.MockPredictionLog
}

func newTestRouter(t *testing.T, withHistory bool, mws ...func(http.Handler) http.Handler) (http.Handler, testDeps) {
	t.Helper()
	deps := testDeps{
		classifier: mocks.NewMockClassifier(t),
		registry:   mocks.NewMockHealthRegistry(t),
		model:      mocks.NewMockModelInfo(t),
		history:    mocks.NewMockPredictionLog(t),
	}

	var opts []handlers.ClassifyOption
	if withHistory {
		opts = append(opts, handlers.WithHistory(deps.history, 10))
	}

	router := adapthttp.NewRouter(adapthttp.Handlers{
		Classify: handlers.NewClassifyHandler(deps.classifier, nil, opts...),
		Health:   handlers.NewHealthHandler(deps.registry, deps.model),
		Info:     handlers.NewInfoHandler(deps.model, "1.0.0", adapthttp.Endpoints(withHistory)),
	}, testCORS, mws...)
	return router, deps
}

func registeredRoutes(t *testing.T, router http.Handler) map[string]bool {
	t.Helper()

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}
	return registered
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, true)
	registered := registeredRoutes(t, router)

	for route := range adapthttp.Endpoints(true) {
		if !registered[route] {
			t.Errorf("route %s not registered", route)
		}
	}
	if !registered["GET /"] {
		t.Error("route GET / not registered")
	}
}

func TestRouter_HistoryRouteOnlyWhenEnabled(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, false)
	registered := registeredRoutes(t, router)

	if registered["GET /predictions"] {
		t.Error("GET /predictions registered without a history store")
	}
	if _, listed := adapthttp.Endpoints(false)["GET /predictions"]; listed {
		t.Error("GET /predictions advertised without a history store")
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, deps := newTestRouter(t, false, testMW)
	deps.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationPredict(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t, false)
	deps.classifier.EXPECT().Classify(mock.Anything, "Write release notes").Return(heuristicLow())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"description":"Write release notes"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/predict", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if rec.Code >= 300 {
		t.Errorf("preflight status = %d", rec.Code)
	}
}

func TestRouter_CORSRejectsUnknownOrigin(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t, false)
	deps.model.EXPECT().Available().Return(false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), `"error":"Not found"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/predict", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func heuristicLow() classification.Result {
	return classification.Result{
		Priority:   classification.PriorityLow,
		Status:     classification.StatusTodo,
		Source:     classification.SourceHeuristic,
		Confidence: 0.62,
	}
}

func TestRouter_CORSHeadersSurviveTimeout(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t, false, middleware.Timeout(30*time.Millisecond))
	deps.classifier.EXPECT().Classify(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string) classification.Result {
			<-ctx.Done()
			return classification.Default()
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"description":"slow model"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"error":"Request timeout"`)
}
