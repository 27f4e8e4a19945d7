package reconcile

import "fmt"

// Side identifies which input table an error refers to.
type Side string

const (
	// SideLeft is the left (development) input table.
	SideLeft Side = "left"
	// SideRight is the right (UAT) input table.
	SideRight Side = "right"
)

// MissingColumnError reports that a configured key column does not exist
// in its input table. It is raised during validation, before any join
// work, and is recoverable: the caller can fix the column names and retry.
type MissingColumnError struct {
	// Column is the missing column name.
	Column string
	// Side is the table the column was expected in.
	Side Side
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found in %s table", e.Column, e.Side)
}

// UnexpectedError wraps any failure during join or reshape that is not a
// validation error. It is not expected in normal operation and is
// propagated to the caller without retries.
type UnexpectedError struct {
	// Err is the underlying cause.
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected reconciliation failure: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}
