package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/dto"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantMessage string
	}{
		{
			name:        "input error keeps wire strings",
			err:         dto.ErrEmptyDescription,
			wantStatus:  http.StatusBadRequest,
			wantError:   "Empty description",
			wantMessage: "description cannot be empty",
		},
		{
			name:        "wrapped input error",
			err:         fmt.Errorf("decoding: %w", dto.ErrInvalidJSON),
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid JSON in request body",
			wantMessage: "Could not parse JSON",
		},
		{
			name:        "other errors are generic 500s",
			err:         errors.New("disk on fire"),
			wantStatus:  http.StatusInternalServerError,
			wantError:   "Internal server error",
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, got := dto.NewErrorResponse(tt.err)

			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if got.Error != tt.wantError {
				t.Errorf("Error = %q, want %q", got.Error, tt.wantError)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/predict", nil)

	dto.WriteErrorResponse(w, r, dto.ErrMissingDescription)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]string{"error": "Missing required field", "message": "description is required"}
	if len(body) != len(want) || body["error"] != want["error"] || body["message"] != want["message"] {
		t.Errorf("body = %v, want %v", body, want)
	}
}

func TestWriteFallbackResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/predict", nil)

	dto.WriteFallbackResponse(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := map[string]any{
		"priority":   "medium",
		"status":     "todo",
		"source":     "error-fallback",
		"confidence": 0.5,
		"error":      "Internal server error",
	}
	if len(body) != len(want) {
		t.Errorf("body has %d keys, want %d: %v", len(body), len(want), body)
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("body[%q] = %v, want %v", k, body[k], v)
		}
	}
}

func TestWriteNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/nope", nil)

	w := httptest.NewRecorder()
	dto.WriteNotFound(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("not found status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	dto.WriteMethodNotAllowed(w, r)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("method status = %d", w.Code)
	}
}
