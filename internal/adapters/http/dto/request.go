package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/task-classifier/internal/domain"
)

// MaxBodyBytes caps a JSON request body (1 MB).
const MaxBodyBytes = 1 << 20

// Input errors with the client-facing strings of the /predict contract.
var (
	ErrContentType = &domain.InputError{
		Code:    "Content-Type must be application/json",
		Message: "Invalid request format",
	}
	ErrInvalidJSON = &domain.InputError{
		Code:    "Invalid JSON in request body",
		Message: "Could not parse JSON",
	}
	ErrMissingDescription = &domain.InputError{
		Code:    "Missing required field",
		Message: "description is required",
	}
	ErrDescriptionType = &domain.InputError{
		Code:    "Invalid field type",
		Message: "description must be a string",
	}
	ErrEmptyDescription = &domain.InputError{
		Code:    "Empty description",
		Message: "description cannot be empty",
	}
	ErrMissingDescriptions = &domain.InputError{
		Code:    "Missing required field",
		Message: "descriptions is required",
	}
	ErrDescriptionsType = &domain.InputError{
		Code:    "Invalid field type",
		Message: "descriptions must be an array of strings",
	}
	ErrInvalidLimit = &domain.InputError{
		Code:    "Invalid query parameter",
		Message: "limit must be a positive integer",
	}
)

// TooManyDescriptions reports a batch larger than limit.
func TooManyDescriptions(limit int) *domain.InputError {
	return &domain.InputError{
		Code:    "Too many descriptions",
		Message: fmt.Sprintf("descriptions must contain at most %d items", limit),
	}
}

// PredictRequest is the JSON body of POST /predict.
type PredictRequest struct {
	Description string `json:"description"`
}

// BatchPredictRequest is the JSON body of POST /predict/batch.
type BatchPredictRequest struct {
	Descriptions []string `json:"descriptions"`
}

// CheckContentType accepts application/json and any +json media type.
func CheckContentType(r *http.Request) error {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || (mt != "application/json" && !strings.HasSuffix(mt, "+json")) {
		return ErrContentType
	}
	return nil
}

// DecodePredictRequest reads and validates a /predict body. The returned
// description is trimmed.
func DecodePredictRequest(r *http.Request) (PredictRequest, error) {
	fields, err := decodeObject(r.Body)
	if err != nil {
		return PredictRequest{}, err
	}

	raw, ok := fields["description"]
	if !ok || falsy(raw) {
		return PredictRequest{}, ErrMissingDescription
	}

	description, ok := raw.(string)
	if !ok {
		return PredictRequest{}, ErrDescriptionType
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return PredictRequest{}, ErrEmptyDescription
	}

	return PredictRequest{Description: description}, nil
}

// DecodeBatchPredictRequest reads and validates a /predict/batch body of at
// most maxItems descriptions. Blank items are allowed; they classify to the
// heuristic default.
func DecodeBatchPredictRequest(r *http.Request, maxItems int) (BatchPredictRequest, error) {
	fields, err := decodeObject(r.Body)
	if err != nil {
		return BatchPredictRequest{}, err
	}

	raw, ok := fields["descriptions"]
	if !ok || raw == nil {
		return BatchPredictRequest{}, ErrMissingDescriptions
	}

	items, ok := raw.([]any)
	if !ok {
		return BatchPredictRequest{}, ErrDescriptionsType
	}
	if len(items) == 0 {
		return BatchPredictRequest{}, ErrMissingDescriptions
	}
	if maxItems > 0 && len(items) > maxItems {
		return BatchPredictRequest{}, TooManyDescriptions(maxItems)
	}

	req := BatchPredictRequest{Descriptions: make([]string, len(items))}
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return BatchPredictRequest{}, ErrDescriptionsType
		}
		req.Descriptions[i] = strings.TrimSpace(s)
	}
	return req, nil
}

// decodeObject decodes exactly one JSON object from body.
func decodeObject(body io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(io.LimitReader(body, MaxBodyBytes+1))
	if err != nil || len(data) > MaxBodyBytes {
		return nil, ErrInvalidJSON
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return nil, ErrInvalidJSON
	}
	if dec.More() {
		return nil, ErrInvalidJSON
	}
	return fields, nil
}

// falsy reports JSON values that count as an absent field. The empty string
// is not one of them; it is reported as an empty description.
func falsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
