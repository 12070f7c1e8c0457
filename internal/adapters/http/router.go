// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-classifier/internal/platform/config"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Classify *handlers.ClassifyHandler
	Health   *handlers.HealthHandler
	Info     *handlers.InfoHandler
}

// Endpoints describes the public routes for GET /.
func Endpoints(historyEnabled bool) map[string]string {
	endpoints := map[string]string{
		"POST /predict":       "Classify task description",
		"POST /predict/batch": "Classify up to batch.max_items descriptions",
		"GET /health":         "Health check",
		"GET /health/live":    "Liveness probe",
		"GET /health/ready":   "Readiness probe",
	}
	if historyEnabled {
		endpoints["GET /predictions"] = "Recent predictions"
	}
	return endpoints
}

// NewRouter creates an HTTP handler with all application routes registered.
// CORS is outermost so that every response, including the recovery 500 and
// the timeout 504, carries the CORS headers. The given middlewares follow in
// order.
func NewRouter(h Handlers, corsCfg config.CORSConfig, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.New(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: corsCfg.AllowedMethods,
		AllowedHeaders: corsCfg.AllowedHeaders,
	}).Handler)
	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(dto.WriteNotFound)
	r.MethodNotAllowed(dto.WriteMethodNotAllowed)

	r.Get("/", h.Info.Info)

	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Post("/predict", h.Classify.Predict)
	r.Post("/predict/batch", h.Classify.PredictBatch)
	if h.Classify.HistoryEnabled() {
		r.Get("/predictions", h.Classify.ListPredictions)
	}

	return r
}
