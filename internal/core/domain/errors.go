package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSheet   = errors.New("unknown sheet")
	ErrUnknownListing = errors.New("unknown listing")
	ErrMissingSetting = errors.New("missing setting")
	ErrInvalidCell    = errors.New("invalid cell value")
	ErrNamedNotFound  = errors.New("named cell not found")

	ErrUnsupportedCreative = errors.New("unsupported creative type")
)

// CellError reports a cell that could not be parsed into its field.
type CellError struct {
	Field string
	Value string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Field, e.Value, e.Err)
}

func (e *CellError) Unwrap() []error { return []error{ErrInvalidCell, e.Err} }

// RowError aborts a batch at a specific row. Message is what the operator
// sees; Err keeps the underlying cause for logs and errors.Is.
type RowError struct {
	Sheet   string
	Row     int
	Message string
	Err     error
}

func (e *RowError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s row %d: %s", e.Sheet, e.Row, e.Message)
	}
	return fmt.Sprintf("%s row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
