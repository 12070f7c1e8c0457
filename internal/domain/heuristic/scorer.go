// Package heuristic implements the deterministic keyword scorer used when no
// statistical model is available or trusted.
//
// Scoring is a single additive pass over a static rule table: every rule
// whose keywords occur in the text contributes to a fixed-size score board,
// and the highest cell on each axis wins. Keywords are matched as substrings
// of the normalized text, so a phrase rule ("critical bug") and its parts
// ("critical", "bug") all contribute.
package heuristic

import (
	"strings"

	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
)

// ScoreBoard holds the accumulated evidence for one scoring pass, indexed by
// the declaration order of classification.Priorities and
// classification.Statuses.
type ScoreBoard struct {
	Priority [len(classification.Priorities)]float64
	Status   [len(classification.Statuses)]float64
}

// PriorityScore returns the accumulated score for p, or 0 for an invalid p.
func (b ScoreBoard) PriorityScore(p classification.Priority) float64 {
	if i := p.Index(); i >= 0 {
		return b.Priority[i]
	}
	return 0
}

// StatusScore returns the accumulated score for s, or 0 for an invalid s.
func (b ScoreBoard) StatusScore(s classification.Status) float64 {
	if i := s.Index(); i >= 0 {
		return b.Status[i]
	}
	return 0
}

// PriorityTotal returns the sum of all priority cells.
func (b ScoreBoard) PriorityTotal() float64 {
	return sum(b.Priority[:])
}

// StatusTotal returns the sum of all status cells.
func (b ScoreBoard) StatusTotal() float64 {
	return sum(b.Status[:])
}

// Score classifies text with the keyword rules. It never fails: blank text
// yields classification.Default(), and text without any matching keyword
// yields medium/todo with the minimum confidence.
func Score(text string) classification.Result {
	normalized := normalize(text)
	if normalized == "" {
		return classification.Default()
	}
	return Board(normalized).result()
}

// Board returns the raw score board for text without selecting labels.
func Board(text string) ScoreBoard {
	normalized := normalize(text)

	var b ScoreBoard
	if normalized == "" {
		return b
	}

	if containsAny(normalized, completionKeywords) {
		b.Status[classification.StatusDone.Index()] += completionWeight
	}

	for _, r := range rules {
		matches := countMatches(normalized, r.Keywords)
		if matches == 0 {
			continue
		}
		b.Priority[r.Priority.Index()] += r.Weight * float64(matches)
		b.Status[r.Status.Index()] += r.Weight * float64(matches)
	}

	for _, sk := range statusKeywords {
		if matches := countMatches(normalized, sk.keywords); matches > 0 {
			b.Status[sk.status.Index()] += singleAxisWeight * float64(matches)
		}
	}

	for _, pk := range priorityKeywords {
		if matches := countMatches(normalized, pk.keywords); matches > 0 {
			b.Priority[pk.priority.Index()] += singleAxisWeight * float64(matches)
		}
	}

	return b
}

// result selects the winning labels and derives the confidence.
func (b ScoreBoard) result() classification.Result {
	priority := classification.Priorities[argmax(b.Priority[:])]
	status := classification.Statuses[argmax(b.Status[:])]

	priorityConfidence := classification.DefaultConfidence
	if total := b.PriorityTotal(); total == 0 {
		priority = classification.PriorityMedium
	} else {
		priorityConfidence = min(b.PriorityScore(priority)/total, classification.MaxHeuristicConfidence)
	}

	statusConfidence := classification.DefaultConfidence
	if total := b.StatusTotal(); total == 0 {
		status = classification.StatusTodo
	} else {
		statusConfidence = min(b.StatusScore(status)/total, classification.MaxHeuristicConfidence)
	}

	return classification.Result{
		Priority:   priority,
		Status:     status,
		Source:     classification.SourceHeuristic,
		Confidence: max(classification.DefaultConfidence, classification.Round2((priorityConfidence+statusConfidence)/2)),
	}
}

func normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}

// countMatches returns how many distinct keywords occur in text. A keyword
// that occurs several times still counts once.
func countMatches(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// argmax returns the index of the first maximum in scores.
func argmax(scores []float64) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}

func sum(scores []float64) float64 {
	var total float64
	for _, s := range scores {
		total += s
	}
	return total
}
