package report

import (
	"fmt"
	"strings"
)

// MissingSourceTableError indicates the uploaded workbook does not contain
// the required source sheet. Fatal to the whole run.
type MissingSourceTableError struct {
	Sheet string
}

func (e *MissingSourceTableError) Error() string {
	return fmt.Sprintf("workbook must contain a sheet named %q", e.Sheet)
}

// InsufficientColumnsError indicates the source table has fewer columns than
// the classification contract requires.
type InsufficientColumnsError struct {
	Have int
	Want int
}

func (e *InsufficientColumnsError) Error() string {
	return fmt.Sprintf("source table has %d columns, need at least %d", e.Have, e.Want)
}

// MissingGroupingColumnError indicates one or more of the four grouping
// columns is absent after header normalization.
type MissingGroupingColumnError struct {
	Columns []string
}

func (e *MissingGroupingColumnError) Error() string {
	return fmt.Sprintf("missing grouping columns: %s", strings.Join(e.Columns, ", "))
}
