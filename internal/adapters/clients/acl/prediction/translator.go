package prediction

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/task-classifier/internal/domain"
)

// Result is a translated model-server answer for one axis.
type Result struct {
	Label         string
	Confidence    float64
	HasConfidence bool
}

// ToPredictRequest builds the request body for text.
func ToPredictRequest(text string) PredictRequestDTO {
	return PredictRequestDTO{Text: text}
}

// ToResult converts a predict response into a Result. An empty label is an
// inference failure. The label is passed through verbatim otherwise; label
// set membership is checked by the caller.
func ToResult(dto PredictResponseDTO) (Result, error) {
	if strings.TrimSpace(dto.Label) == "" {
		return Result{}, fmt.Errorf("model server returned an empty label: %w", domain.ErrModelInference)
	}

	r := Result{Label: dto.Label}
	if dto.Confidence != nil {
		r.Confidence = *dto.Confidence
		r.HasConfidence = true
	}
	return r, nil
}
