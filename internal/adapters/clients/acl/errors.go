// Package acl is the anti-corruption layer between the model-serving
// sidecar's HTTP API and the classifier's ports. Wire shapes and their
// translators live in acl/prediction; error mapping lives here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/jsamuelsen11/task-classifier/internal/domain"
)

// maxErrorBodySize limits how much of an error body is read.
const maxErrorBodySize = 1 << 20

// errorBody accepts RFC 7807 problem details ("detail") as well as the plain
// {"error": "..."} shape most model servers emit.
type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// translateStatus maps a non-200 model server response to a domain error.
// A server that cannot answer right now (missing model, auth, throttling,
// 5xx) is ErrModelUnavailable; one that rejected or failed on this input is
// ErrModelInference.
func translateStatus(resp *http.Response) error {
	detail := errorDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound,
		code == http.StatusUnauthorized,
		code == http.StatusForbidden,
		code == http.StatusTooManyRequests,
		code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrModelUnavailable)
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrModelInference)
	default:
		return fmt.Errorf("unexpected status %d: %s: %w", code, detail, domain.ErrModelInference)
	}
}

// errorDetail returns the message from a JSON error body, or "".
func errorDetail(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mt != "application/json" && mt != "application/problem+json") {
		return ""
	}

	var eb errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&eb); err != nil {
		return ""
	}
	if eb.Detail != "" {
		return eb.Detail
	}
	return eb.Error
}
