// Package dataset provides the in-memory, column-oriented table consumed by
// the rules engine.
//
// A Dataset is an ordered collection of named columns of equal length. Cell
// values are scalars: float64 for numbers, string for text, bool for
// booleans, nil for null/missing. The engine never mutates a dataset;
// Dataset values are safe to share across concurrent evaluations.
package dataset

import (
	"fmt"

	"github.com/solenne/datawarden/internal/types"
)

// Dataset is an immutable column-oriented table.
type Dataset struct {
	names   []string
	columns map[string][]any
	rows    int
}

// New builds a dataset from ordered column names and their values.
// All columns must have equal length and unique names; this is the one place
// shape problems are rejected outright rather than degraded into error
// details, since a ragged table is invalid input to the whole engine.
func New(names []string, columns map[string][]any) (*Dataset, error) {
	rows := -1
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("column %q: %w", name, types.ErrDuplicateColumn)
		}
		seen[name] = true

		col, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("column %q has no values", name)
		}
		if rows == -1 {
			rows = len(col)
		} else if len(col) != rows {
			return nil, fmt.Errorf("column %q has %d values, expected %d: %w",
				name, len(col), rows, types.ErrColumnLengthMismatch)
		}
	}
	if rows == -1 {
		rows = 0
	}

	// Defensive copy of the name order; column slices are shared with the
	// caller under the never-mutate contract.
	ordered := make([]string, len(names))
	copy(ordered, names)

	return &Dataset{names: ordered, columns: columns, rows: rows}, nil
}

// Columns returns the ordered column names.
func (d *Dataset) Columns() []string {
	return d.names
}

// Column returns the values of a named column and whether it exists.
func (d *Dataset) Column(name string) ([]any, bool) {
	col, ok := d.columns[name]
	return col, ok
}

// HasColumn reports whether the dataset contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.columns[name]
	return ok
}

// Rows returns the row count shared by all columns.
func (d *Dataset) Rows() int {
	return d.rows
}

// NonNull counts the non-null values in a column slice.
func NonNull(col []any) int {
	n := 0
	for _, v := range col {
		if v != nil {
			n++
		}
	}
	return n
}
