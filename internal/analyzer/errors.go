package analyzer

import (
	"fmt"
	"strings"
)

// MissingColumnError reports columns the table must contain to proceed.
type MissingColumnError struct {
	Columns []string
}

func (e MissingColumnError) Error() string {
	return "missing required column(s): " + strings.Join(e.Columns, ", ")
}

// CellError reports a malformed cell encountered during classification.
// Row is 1-based within the cleaned table's records.
type CellError struct {
	Column string
	Row    int
	Err    error
}

func (e CellError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e CellError) Unwrap() error {
	return e.Err
}
