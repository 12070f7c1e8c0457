package heuristic

import "github.com/jsamuelsen11/task-classifier/internal/domain/classification"

// Rule associates a keyword set with a (priority, status) pair. Every keyword
// found in the text adds Weight to both the priority cell and the status cell.
type Rule struct {
	Keywords []string
	Priority classification.Priority
	Status   classification.Status
	Weight   float64
}

// Fixed weights for the special-purpose keyword lists.
const (
	completionWeight = 0.9
	singleAxisWeight = 0.3
)

// completionKeywords add completionWeight to status=done once, if any of
// them appears anywhere in the text.
var completionKeywords = []string{"done", "completed", "finished", "resolved", "closed", "fixed"}

// rules is the general weighted rule table. Contributions accumulate; a text
// may fire any number of rules.
var rules = []Rule{
	// High priority.
	{
		Keywords: []string{"crash", "outage", "urgent", "critical", "emergency", "asap", "immediate", "security vulnerability"},
		Priority: classification.PriorityHigh, Status: classification.StatusProgress, Weight: 0.9,
	},
	{
		Keywords: []string{"critical bug", "critical issue", "critical fix", "urgent fix", "emergency fix"},
		Priority: classification.PriorityHigh, Status: classification.StatusProgress, Weight: 0.95,
	},
	{
		Keywords: []string{"payment bug", "payment fail", "checkout bug", "authentication bug"},
		Priority: classification.PriorityHigh, Status: classification.StatusTodo, Weight: 0.85,
	},

	// Medium priority.
	{
		Keywords: []string{"implement", "develop", "building", "creating", "working on", "developing"},
		Priority: classification.PriorityMedium, Status: classification.StatusProgress, Weight: 0.8,
	},
	{
		Keywords: []string{"design", "draft", "spec", "review", "testing", "test", "qa", "verify"},
		Priority: classification.PriorityMedium, Status: classification.StatusProgress, Weight: 0.75,
	},
	{
		Keywords: []string{"refactor", "update", "improve", "optimize", "investigate"},
		Priority: classification.PriorityMedium, Status: classification.StatusProgress, Weight: 0.7,
	},
	{
		Keywords: []string{"plan", "planning", "review", "update documentation"},
		Priority: classification.PriorityMedium, Status: classification.StatusTodo, Weight: 0.7,
	},

	// Low priority.
	{
		Keywords: []string{"idea", "research", "explore", "exploring", "later", "someday", "future"},
		Priority: classification.PriorityLow, Status: classification.StatusTodo, Weight: 0.7,
	},
	{
		Keywords: []string{"cleanup", "clean up", "organize", "organizing"},
		Priority: classification.PriorityLow, Status: classification.StatusTodo, Weight: 0.65,
	},
	{
		Keywords: []string{"docs", "document", "documentation", "write notes", "release notes"},
		Priority: classification.PriorityLow, Status: classification.StatusTodo, Weight: 0.6,
	},

	// Completion.
	{
		Keywords: []string{"done", "completed", "finished", "resolved", "closed", "fixed"},
		Priority: classification.PriorityMedium, Status: classification.StatusDone, Weight: 0.9,
	},
	{
		Keywords: []string{"completed", "finished implementing", "resolved issue"},
		Priority: classification.PriorityHigh, Status: classification.StatusDone, Weight: 0.85,
	},
	{
		Keywords: []string{"completed research", "finished documentation"},
		Priority: classification.PriorityLow, Status: classification.StatusDone, Weight: 0.8,
	},
}

// statusKeywords contribute singleAxisWeight per match to the status axis only.
var statusKeywords = []struct {
	status   classification.Status
	keywords []string
}{
	{classification.StatusProgress, []string{"working on", "implementing", "developing", "building", "testing", "reviewing", "fixing"}},
	{classification.StatusDone, []string{"done", "completed", "finished", "resolved", "closed", "fixed", "deployed"}},
	{classification.StatusTodo, []string{"plan", "planning", "need to", "should", "will", "todo", "task"}},
}

// priorityKeywords contribute singleAxisWeight per match to the priority axis only.
var priorityKeywords = []struct {
	priority classification.Priority
	keywords []string
}{
	{classification.PriorityHigh, []string{"urgent", "critical", "emergency", "asap", "immediate", "important", "bug", "error", "fail", "crash", "outage"}},
	{classification.PriorityMedium, []string{"implement", "develop", "design", "update", "improve", "review"}},
	{classification.PriorityLow, []string{"research", "explore", "idea", "plan", "cleanup", "documentation", "later"}},
}

// Rules returns a copy of the general rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Keywords = append([]string(nil), r.Keywords...)
		out[i] = r
	}
	return out
}
