package model

import (
	"context"

	"github.com/jsamuelsen11/task-classifier/internal/domain"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

var (
	_ ports.ModelAdapter = Disabled{}
	_ ports.ModelInfo    = Disabled{}
)

// Disabled is the adapter used when no model is loaded. Every call reports
// domain.ErrModelUnavailable, so the Arbitrator always answers from the
// heuristic.
type Disabled struct{}

// Available always reports false.
func (Disabled) Available() bool { return false }

// Location always returns "".
func (Disabled) Location() string { return "" }

func (Disabled) PredictPriority(context.Context, string) (string, error) {
	return "", domain.ErrModelUnavailable
}

func (Disabled) PredictStatus(context.Context, string) (string, error) {
	return "", domain.ErrModelUnavailable
}

func (Disabled) ConfidencePriority(context.Context, string) (float64, error) {
	return 0, domain.ErrModelUnavailable
}

func (Disabled) ConfidenceStatus(context.Context, string) (float64, error) {
	return 0, domain.ErrModelUnavailable
}
