package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/task-classifier/internal/domain"
	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
)

// Wire strings for errors that are not input errors.
const (
	errorInternal   = "Internal server error"
	messageInternal = "An unexpected error occurred"
	errorNotFound   = "Not found"
	messageNotFound = "No route matches the request"
	errorMethod     = "Method not allowed"
	messageMethod   = "The route does not support this method"
	errorTimeout    = "Request timeout"
	messageTimeout  = "The request did not complete in time"
)

// ErrorResponse is the {error, message} body of every non-2xx response
// except the /predict fallback.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse maps err to a status code and body. Input errors keep
// their client-facing strings; anything else becomes a generic 500 so that
// internal detail never reaches the caller.
func NewErrorResponse(err error) (int, ErrorResponse) {
	var ierr *domain.InputError
	if errors.As(err, &ierr) {
		return http.StatusBadRequest, ErrorResponse{Error: ierr.Code, Message: ierr.Message}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: errorInternal, Message: messageInternal}
}

// WriteErrorResponse writes the {error, message} response for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := NewErrorResponse(err)
	writeJSON(w, r, status, resp)
}

// WriteNotFound writes the 404 body for unknown routes.
func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusNotFound, ErrorResponse{Error: errorNotFound, Message: messageNotFound})
}

// WriteMethodNotAllowed writes the 405 body for known routes hit with the
// wrong method.
func WriteMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusMethodNotAllowed, ErrorResponse{Error: errorMethod, Message: messageMethod})
}

// WriteTimeout writes the 504 body for requests that exceed the server
// deadline.
func WriteTimeout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusGatewayTimeout, ErrorResponse{Error: errorTimeout, Message: messageTimeout})
}

// FallbackResponse is the fixed body /predict returns when classification
// fails unexpectedly.
type FallbackResponse struct {
	PredictResponse
	Error string `json:"error"`
}

// NewFallbackResponse returns the /predict 500 body.
func NewFallbackResponse() FallbackResponse {
	return FallbackResponse{
		PredictResponse: ToPredictResponse(classification.ErrorFallback()),
		Error:           errorInternal,
	}
}

// WriteFallbackResponse writes the /predict 500 body.
func WriteFallbackResponse(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusInternalServerError, NewFallbackResponse())
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", err),
		)
	}
}
