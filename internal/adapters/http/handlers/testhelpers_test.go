package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func modelResult() classification.Result {
	pc, sc := 0.9, 0.8
	return classification.Result{
		Priority:           classification.PriorityHigh,
		Status:             classification.StatusProgress,
		Source:             classification.SourceModel,
		Confidence:         0.85,
		PriorityConfidence: &pc,
		StatusConfidence:   &sc,
	}
}

func heuristicResult() classification.Result {
	return classification.Result{
		Priority:   classification.PriorityLow,
		Status:     classification.StatusTodo,
		Source:     classification.SourceHeuristic,
		Confidence: 0.62,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
