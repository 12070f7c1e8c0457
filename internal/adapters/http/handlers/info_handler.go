package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

// ServiceName is reported by GET /.
const ServiceName = "Task Classifier API"

// InfoHandler serves service metadata at GET /.
type InfoHandler struct {
	model     ports.ModelInfo
	version   string
	endpoints map[string]string
}

// NewInfoHandler creates an InfoHandler. endpoints maps "METHOD /path" to a
// short description.
func NewInfoHandler(model ports.ModelInfo, version string, endpoints map[string]string) *InfoHandler {
	return &InfoHandler{model: model, version: version, endpoints: endpoints}
}

// Info handles GET /.
func (h *InfoHandler) Info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.InfoResponse{
		Service:     ServiceName,
		Version:     h.version,
		Endpoints:   h.endpoints,
		ModelLoaded: h.model.Available(),
	})
}
