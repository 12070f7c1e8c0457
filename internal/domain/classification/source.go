package classification

// Source records which path produced a Result.
type Source string

const (
	SourceModel            Source = "model"
	SourceHeuristic        Source = "heuristic"
	SourceHeuristicDefault Source = "heuristic-default"
	SourceErrorFallback    Source = "error-fallback"
)

// IsValid returns true if the source is one of the defined constants.
func (s Source) IsValid() bool {
	switch s {
	case SourceModel, SourceHeuristic, SourceHeuristicDefault, SourceErrorFallback:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Source) String() string {
	return string(s)
}
