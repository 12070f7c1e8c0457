package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
)

// Prediction is one recorded classification.
type Prediction struct {
	ID          string
	Description string
	Result      classification.Result
	CreatedAt   time.Time
}

// PredictionLog defines the client port for the prediction history store.
// Implemented by the SQLite adapter; called by the predict handler.
type PredictionLog interface {
	// Record appends a prediction to the log and returns the stored entry.
	Record(ctx context.Context, description string, result classification.Result) (*Prediction, error)

	// Recent returns up to limit predictions, newest first.
	Recent(ctx context.Context, limit int) ([]Prediction, error)
}
