package linear

import (
	"fmt"
	"math"
)

// ClassifierSpec is the serialized logistic regression of one pipeline.
// Binary models carry a single coefficient row scoring Classes[1].
type ClassifierSpec struct {
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

type classifier struct {
	classes   []string
	coef      [][]float64
	intercept []float64
	binary    bool
}

func newClassifier(spec ClassifierSpec, features int) (*classifier, error) {
	rows := len(spec.Classes)
	binary := rows == 2 && len(spec.Coef) == 1
	if binary {
		rows = 1
	}

	if len(spec.Coef) != rows {
		return nil, fmt.Errorf("coef has %d rows, want %d for %d classes", len(spec.Coef), rows, len(spec.Classes))
	}
	if len(spec.Intercept) != rows {
		return nil, fmt.Errorf("intercept has %d values, want %d", len(spec.Intercept), rows)
	}
	for i, row := range spec.Coef {
		if len(row) != features {
			return nil, fmt.Errorf("coef row %d has %d columns, vectorizer has %d", i, len(row), features)
		}
	}

	return &classifier{
		classes:   spec.Classes,
		coef:      spec.Coef,
		intercept: spec.Intercept,
		binary:    binary,
	}, nil
}

// scores returns one decision value per coefficient row.
func (c *classifier) scores(x sparseRow) []float64 {
	out := make([]float64, len(c.coef))
	for k, coef := range c.coef {
		s := c.intercept[k]
		for _, e := range x {
			s += coef[e.col] * e.w
		}
		out[k] = s
	}
	return out
}

// predict returns the label with the highest decision value. Ties keep the
// earliest class.
func (c *classifier) predict(x sparseRow) string {
	s := c.scores(x)
	if c.binary {
		if s[0] > 0 {
			return c.classes[1]
		}
		return c.classes[0]
	}

	best := 0
	for k := 1; k < len(s); k++ {
		if s[k] > s[best] {
			best = k
		}
	}
	return c.classes[best]
}

// probabilities returns per-class probabilities in class order.
func (c *classifier) probabilities(x sparseRow) []float64 {
	s := c.scores(x)
	if c.binary {
		p := 1 / (1 + math.Exp(-s[0]))
		return []float64{1 - p, p}
	}
	return softmax(s)
}

func softmax(s []float64) []float64 {
	maxScore := math.Inf(-1)
	for _, v := range s {
		maxScore = math.Max(maxScore, v)
	}

	out := make([]float64, len(s))
	var sum float64
	for i, v := range s {
		out[i] = math.Exp(v - maxScore)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
