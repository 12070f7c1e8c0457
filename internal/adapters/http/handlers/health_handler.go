package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-classifier/internal/platform/health"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles the health endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	model    ports.ModelInfo
}

// NewHealthHandler creates a new HealthHandler with the given health registry
// and model.
func NewHealthHandler(registry ports.HealthRegistry, model ports.ModelInfo) *HealthHandler {
	return &HealthHandler{registry: registry, model: model}
}

// Health handles GET /health. The service is up whenever it can answer, so
// the status is always "ok"; model state is reported alongside.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	resp := dto.HealthResponse{
		Status:      statusOK,
		ModelLoaded: h.model.Available(),
	}
	if path := h.model.Location(); path != "" {
		resp.ModelPath = &path
	}
	writeJSON(w, http.StatusOK, resp)
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
		} else {
			checks[name] = statusOK
		}
	}

	status := statusReady
	code := http.StatusOK
	if !health.Healthy(results) {
		status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
