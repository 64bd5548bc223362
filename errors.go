package circuit

import "fmt"

// ParseError reports a record that does not decode into a Point.
type ParseError struct {
	// Line is the 1-based record number in the input, blank records included.
	Line int
	// Record is the raw record text.
	Record string
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("circuit: line %d: cannot parse %q: %v", e.Line, e.Record, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// BudgetError reports an edge budget that is zero or exceeds the number of
// edges available.
type BudgetError struct {
	Budget    int
	Available int
}

func (e *BudgetError) Error() string {
	if e.Budget < 1 {
		return fmt.Sprintf("circuit: edge budget must be >= 1, got %d", e.Budget)
	}
	return fmt.Sprintf("circuit: edge budget %d exceeds the %d available edges", e.Budget, e.Available)
}

// InsufficientGroupsError reports that fewer groups exist than the reducer
// needs.
type InsufficientGroupsError struct {
	Need int
	Have int
}

func (e *InsufficientGroupsError) Error() string {
	return fmt.Sprintf("circuit: need %d groups, have %d", e.Need, e.Have)
}

// DegenerateInputError reports a point set too small to form any edge.
type DegenerateInputError struct {
	Points int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("circuit: at least 2 points are required, got %d", e.Points)
}
