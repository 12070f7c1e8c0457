package ports

import (
	"context"

	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
)

// Classifier defines the service port for classifying task descriptions.
// Implemented by the application layer; called by inbound adapters (handlers
// and the CLI).
type Classifier interface {
	// Classify returns a labeled, confidence-scored result for text. It never
	// fails: every error below this boundary degrades to a heuristic result.
	Classify(ctx context.Context, text string) classification.Result

	// ClassifyBatch classifies each text independently with bounded
	// concurrency. Results are returned in input order.
	ClassifyBatch(ctx context.Context, texts []string) []classification.Result
}
