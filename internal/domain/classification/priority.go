package classification

// Priority is the urgency label assigned to a task description.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every priority in declaration order. Score ties resolve to
// the earliest entry.
var Priorities = [...]Priority{PriorityHigh, PriorityMedium, PriorityLow}

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Index returns the position of p in Priorities, or -1 if p is invalid.
func (p Priority) Index() int {
	for i, v := range Priorities {
		if v == p {
			return i
		}
	}
	return -1
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}
