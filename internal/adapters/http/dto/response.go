// Package dto provides the JSON request and response shapes of the inbound
// HTTP adapter and the {error, message} error body.
package dto

import (
	"time"

	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

// PredictResponse is one classification on the wire. Axis confidences are
// present only for model-sourced results.
type PredictResponse struct {
	Priority           string   `json:"priority"`
	Status             string   `json:"status"`
	Source             string   `json:"source"`
	Confidence         float64  `json:"confidence"`
	PriorityConfidence *float64 `json:"priority_confidence,omitempty"`
	StatusConfidence   *float64 `json:"status_confidence,omitempty"`
}

// ToPredictResponse converts a classification result to its wire form.
func ToPredictResponse(r classification.Result) PredictResponse {
	return PredictResponse{
		Priority:           r.Priority.String(),
		Status:             r.Status.String(),
		Source:             r.Source.String(),
		Confidence:         r.Confidence,
		PriorityConfidence: r.PriorityConfidence,
		StatusConfidence:   r.StatusConfidence,
	}
}

// BatchPredictResponse is the body of POST /predict/batch.
type BatchPredictResponse struct {
	Results []PredictResponse `json:"results"`
	Count   int               `json:"count"`
}

// ToBatchPredictResponse converts results, kept in input order.
func ToBatchPredictResponse(results []classification.Result) BatchPredictResponse {
	items := make([]PredictResponse, len(results))
	for i, r := range results {
		items[i] = ToPredictResponse(r)
	}
	return BatchPredictResponse{Results: items, Count: len(items)}
}

// PredictionResponse is one history entry.
type PredictionResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	PredictResponse
	CreatedAt string `json:"created_at"`
}

// PredictionListResponse is the body of GET /predictions.
type PredictionListResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
	Count       int                  `json:"count"`
}

// ToPredictionListResponse converts history entries, newest first.
func ToPredictionListResponse(predictions []ports.Prediction) PredictionListResponse {
	items := make([]PredictionResponse, len(predictions))
	for i, p := range predictions {
		items[i] = PredictionResponse{
			ID:              p.ID,
			Description:     p.Description,
			PredictResponse: ToPredictResponse(p.Result),
			CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		}
	}
	return PredictionListResponse{Predictions: items, Count: len(items)}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string  `json:"status"`
	ModelLoaded bool    `json:"modelLoaded"`
	ModelPath   *string `json:"modelPath"`
}

// InfoResponse is the body of GET /.
type InfoResponse struct {
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Endpoints   map[string]string `json:"endpoints"`
	ModelLoaded bool              `json:"modelLoaded"`
}
