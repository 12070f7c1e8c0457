package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
	"github.com/jsamuelsen11/task-classifier/internal/domain/heuristic"
)

// sampleDescriptions is a spread of realistic task descriptions covering every
// label combination.
var sampleDescriptions = []string{
	"Server outage impacting all clients",
	"Critical payment bug fails for EU customers",
	"Customer escalation needs immediate fix",
	"Security vulnerability in user authentication",
	"Urgent: Fix payment processing bug",
	"Fixed critical server outage",
	"Completed emergency security patch",
	"Draft product requirements for Q2",
	"Working on analytics feature",
	"Reviewing code for pull request",
	"Plan migration to new database",
	"QA regression checklist",
	"Finished code refactoring",
	"Researching new caching strategy",
	"Write release notes",
	"Cleanup CSS debt",
	"Completed research on new tools",
	"hello world",
	"x",
	"ALL CAPS URGENT CRASH ASAP",
}

func TestScore_BlankInputReturnsDefault(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", " ", "\t\n", "   \r\n  "} {
		got := heuristic.Score(in)
		assert.Equal(t, classification.Default(), got, "Score(%q)", in)
	}
}

func TestScore_DefaultShape(t *testing.T) {
	t.Parallel()

	got := heuristic.Score("")

	assert.Equal(t, classification.PriorityMedium, got.Priority)
	assert.Equal(t, classification.StatusTodo, got.Status)
	assert.Equal(t, classification.SourceHeuristicDefault, got.Source)
	assert.InDelta(t, 0.5, got.Confidence, 1e-9)
	assert.Nil(t, got.PriorityConfidence)
	assert.Nil(t, got.StatusConfidence)
}

func TestScore_KnownDescriptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		text           string
		wantPriority   classification.Priority
		wantStatus     classification.Status
		wantConfidence float64
	}{
		{
			name:           "outage is high and in progress",
			text:           "Server outage impacting all clients",
			wantPriority:   classification.PriorityHigh,
			wantStatus:     classification.StatusProgress,
			wantConfidence: 0.95,
		},
		{
			name:           "single weak rule is not scaled down",
			text:           "Write release notes",
			wantPriority:   classification.PriorityLow,
			wantStatus:     classification.StatusTodo,
			wantConfidence: 0.95,
		},
		{
			name:           "completion keyword marks done",
			text:           "Finished analytics feature",
			wantPriority:   classification.PriorityMedium,
			wantStatus:     classification.StatusDone,
			wantConfidence: 0.95,
		},
		{
			name:           "mixed evidence lowers confidence",
			text:           "urgent research",
			wantPriority:   classification.PriorityHigh,
			wantStatus:     classification.StatusProgress,
			wantConfidence: 0.55,
		},
		{
			name:           "no evidence falls back to medium todo",
			text:           "hello world",
			wantPriority:   classification.PriorityMedium,
			wantStatus:     classification.StatusTodo,
			wantConfidence: 0.5,
		},
		{
			name:           "matching is case insensitive",
			text:           "  SERVER OUTAGE  ",
			wantPriority:   classification.PriorityHigh,
			wantStatus:     classification.StatusProgress,
			wantConfidence: 0.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := heuristic.Score(tt.text)

			assert.Equal(t, tt.wantPriority, got.Priority)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, classification.SourceHeuristic, got.Source)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
		})
	}
}

func TestScore_StatusTieResolvesInDeclarationOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want classification.Status
	}{
		// todo (should) vs progress (fixing): todo is declared first.
		{text: "should be fixing", want: classification.StatusTodo},
		// progress (fixing) vs done (deployed): progress is declared first.
		{text: "fixing deployed", want: classification.StatusProgress},
	}

	for _, tt := range tests {
		b := heuristic.Board(tt.text)
		require.InDelta(t, b.Status[0]+b.Status[1]+b.Status[2], 0.6, 1e-9, "board for %q", tt.text)

		got := heuristic.Score(tt.text)
		assert.Equal(t, tt.want, got.Status, "Score(%q).Status", tt.text)
		assert.Equal(t, classification.PriorityMedium, got.Priority, "no priority evidence in %q", tt.text)
		assert.InDelta(t, 0.5, got.Confidence, 1e-9)
	}
}

func TestScore_LayeredPhraseEvidence(t *testing.T) {
	t.Parallel()

	b := heuristic.Board("critical bug in checkout")

	// "critical" (0.9) + "critical bug" (0.95) + priority-only "critical" and "bug" (0.3 each).
	assert.InDelta(t, 0.9+0.95+0.6, b.PriorityScore(classification.PriorityHigh), 1e-9)
	assert.InDelta(t, 0.9+0.95, b.StatusScore(classification.StatusProgress), 1e-9)
	assert.Zero(t, b.PriorityScore(classification.PriorityLow))
}

func TestScore_RepeatedKeywordCountsOnce(t *testing.T) {
	t.Parallel()

	once := heuristic.Board("outage")
	twice := heuristic.Board("outage outage outage")

	assert.Equal(t, once, twice)
}

func TestScore_CompletionKeywordAddsToDoneOnce(t *testing.T) {
	t.Parallel()

	b := heuristic.Board("closed")

	// completion check (0.9) + completion rule (0.9) + status-only "closed" (0.3).
	assert.InDelta(t, 2.1, b.StatusScore(classification.StatusDone), 1e-9)

	b = heuristic.Board("closed and resolved")
	assert.InDelta(t, 0.9+1.8+0.6, b.StatusScore(classification.StatusDone), 1e-9)
}

func TestScore_HeuristicConfidenceBounds(t *testing.T) {
	t.Parallel()

	for _, text := range sampleDescriptions {
		got := heuristic.Score(text)
		if got.Source != classification.SourceHeuristic {
			continue
		}
		assert.GreaterOrEqual(t, got.Confidence, 0.5, "Score(%q)", text)
		assert.LessOrEqual(t, got.Confidence, 0.95, "Score(%q)", text)
		assert.True(t, got.Priority.IsValid(), "Score(%q).Priority", text)
		assert.True(t, got.Status.IsValid(), "Score(%q).Status", text)
	}
}

func TestScore_Idempotent(t *testing.T) {
	t.Parallel()

	for _, text := range sampleDescriptions {
		assert.Equal(t, heuristic.Score(text), heuristic.Score(text), "Score(%q)", text)
	}
}

func TestBoard_AddingKeywordsNeverLowersScores(t *testing.T) {
	t.Parallel()

	steps := []string{
		"plan",
		"plan the urgent",
		"plan the urgent cleanup",
		"plan the urgent cleanup and review",
		"plan the urgent cleanup and review, finished",
	}

	prev := heuristic.Board(steps[0])
	for _, text := range steps[1:] {
		cur := heuristic.Board(text)
		assert.GreaterOrEqual(t, cur.PriorityTotal(), prev.PriorityTotal(), "priority total for %q", text)
		assert.GreaterOrEqual(t, cur.StatusTotal(), prev.StatusTotal(), "status total for %q", text)
		for i := range cur.Priority {
			assert.GreaterOrEqual(t, cur.Priority[i], prev.Priority[i], "priority cell %d for %q", i, text)
		}
		for i := range cur.Status {
			assert.GreaterOrEqual(t, cur.Status[i], prev.Status[i], "status cell %d for %q", i, text)
		}
		prev = cur
	}
}

func TestBoard_BlankIsZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, heuristic.ScoreBoard{}, heuristic.Board("  "))
}

func TestRules_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := heuristic.Rules()
	require.NotEmpty(t, first)
	first[0].Keywords[0] = "mutated"
	first[0].Weight = 0

	second := heuristic.Rules()
	assert.NotEqual(t, "mutated", second[0].Keywords[0])
	assert.NotZero(t, second[0].Weight)
}

func TestRules_WeightsInRange(t *testing.T) {
	t.Parallel()

	for i, r := range heuristic.Rules() {
		assert.Greater(t, r.Weight, 0.0, "rule %d", i)
		assert.LessOrEqual(t, r.Weight, 1.0, "rule %d", i)
		assert.True(t, r.Priority.IsValid(), "rule %d priority", i)
		assert.True(t, r.Status.IsValid(), "rule %d status", i)
		assert.NotEmpty(t, r.Keywords, "rule %d", i)
	}
}
