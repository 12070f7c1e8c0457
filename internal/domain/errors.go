package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrInput            = errors.New("invalid input")
	ErrModelUnavailable = errors.New("model unavailable")
	ErrModelInference   = errors.New("model inference failed")
	ErrInvalidLabel     = errors.New("invalid label")
	ErrInternal         = errors.New("internal error")
)

// InputError describes a rejected request payload. Code and Message are the
// client-facing strings written in the 400 response body.
// Use errors.Is(err, ErrInput) for simple checks, or errors.As(err, &ierr) to
// access the wire strings.
type InputError struct {
	Code    string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInput.Error(), e.Code, e.Message)
}

func (e *InputError) Unwrap() error {
	return ErrInput
}

// LabelError reports a label produced outside the fixed label sets.
type LabelError struct {
	Axis  string
	Value string
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("%s: %s=%q", ErrInvalidLabel.Error(), e.Axis, e.Value)
}

func (e *LabelError) Unwrap() error {
	return ErrInvalidLabel
}
