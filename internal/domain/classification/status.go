package classification

// Status is the workflow state assigned to a task description.
type Status string

const (
	StatusTodo     Status = "todo"
	StatusProgress Status = "progress"
	StatusDone     Status = "done"
)

// Statuses lists every status in declaration order. Score ties resolve to the
// earliest entry.
var Statuses = [...]Status{StatusTodo, StatusProgress, StatusDone}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Index returns the position of s in Statuses, or -1 if s is invalid.
func (s Status) Index() int {
	for i, v := range Statuses {
		if v == s {
			return i
		}
	}
	return -1
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
