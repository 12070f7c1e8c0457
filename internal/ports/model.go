package ports

import "context"

// ModelAdapter is the client port for a trained statistical classifier.
// Implemented by the model adapters; called by the Arbitrator.
//
// The priority and status sub-models are one versioned unit: an adapter
// either serves both or reports itself unavailable. Any error returned by a
// prediction or confidence call means "unavailable for this request" and is
// never surfaced to the caller of the Arbitrator.
type ModelAdapter interface {
	// Available reports whether a model is loaded and trusted.
	Available() bool

	// PredictPriority returns the raw priority label for text. The label is
	// unvalidated; callers must check it against the priority set.
	PredictPriority(ctx context.Context, text string) (string, error)

	// PredictStatus returns the raw status label for text. The label is
	// unvalidated; callers must check it against the status set.
	PredictStatus(ctx context.Context, text string) (string, error)

	// ConfidencePriority returns the model's confidence in its priority
	// prediction for text.
	ConfidencePriority(ctx context.Context, text string) (float64, error)

	// ConfidenceStatus returns the model's confidence in its status
	// prediction for text.
	ConfidenceStatus(ctx context.Context, text string) (float64, error)
}

// ModelInfo describes the loaded model for health and metadata endpoints.
type ModelInfo interface {
	// Available reports whether a model is loaded and trusted.
	Available() bool

	// Location returns where the model was loaded from (a file path or a
	// base URL), or "" when there is nothing to point at.
	Location() string
}

// ModelSnapshotter is implemented by adapters whose underlying model can be
// replaced at runtime. Snapshot returns the model currently in service; a
// caller that makes several calls for one request uses a single snapshot so
// that a concurrent reload cannot mix two models in one answer.
type ModelSnapshotter interface {
	Snapshot() ModelAdapter
}
