package domain

import "fmt"

// ValidationError reports a structurally malformed grid. It is raised when a
// grid is constructed or re-checked, never by the search itself: search-time
// dead ends are ordinary backtracks.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid grid: %s: %s", e.Field, e.Reason)
}
