// Package classification defines the labels, provenance tags, and result type
// produced when a task description is classified.
package classification

import (
	"math"
	"strconv"
)

// Fixed confidence values shared by every classification path.
const (
	DefaultConfidence      = 0.5
	MaxHeuristicConfidence = 0.95
)

// Result is a labeled, confidence-scored classification. A Result is built
// once per request and never mutated afterwards.
//
// PriorityConfidence and StatusConfidence are only set for model-sourced
// results.
type Result struct {
	Priority           Priority
	Status             Status
	Source             Source
	Confidence         float64
	PriorityConfidence *float64
	StatusConfidence   *float64
}

// Default returns the result used when there is no text to classify.
func Default() Result {
	return Result{
		Priority:   PriorityMedium,
		Status:     StatusTodo,
		Source:     SourceHeuristicDefault,
		Confidence: DefaultConfidence,
	}
}

// ErrorFallback returns the fixed result served when classification fails
// unexpectedly.
func ErrorFallback() Result {
	return Result{
		Priority:   PriorityMedium,
		Status:     StatusTodo,
		Source:     SourceErrorFallback,
		Confidence: DefaultConfidence,
	}
}

// Sanitize returns a copy of r whose labels are guaranteed to be members of
// their label sets and whose confidence is a finite number in [0, 1].
// Invalid priorities become medium, invalid statuses become todo, and an
// unusable confidence becomes 0.5.
func (r Result) Sanitize() Result {
	if !r.Priority.IsValid() {
		r.Priority = PriorityMedium
	}
	if !r.Status.IsValid() {
		r.Status = StatusTodo
	}
	if !ValidConfidence(r.Confidence) {
		r.Confidence = DefaultConfidence
	}
	if !r.Source.IsValid() {
		r.Source = SourceHeuristic
	}
	return r
}

// ValidConfidence reports whether c is a finite number in [0, 1].
func ValidConfidence(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0) && c >= 0 && c <= 1
}

// Round2 rounds v to two decimal places using the correctly rounded decimal
// representation of v, so halfway cases resolve the same way as formatting
// the value with two fractional digits.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	out, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return out
}
