package rules

import (
	"fmt"

	"github.com/solenne/datawarden/internal/dataset"
	"github.com/solenne/datawarden/internal/types"
)

// UniquenessRule checks that each configured column holds a sufficient
// fraction of distinct values.
//
// Null policy: nulls are excluded from the distinct count but included in
// the denominator. A column [1, 2, null] therefore has uniqueness 2/3, and a
// column of only nulls has uniqueness 0. Nullable columns consequently
// cannot reach a 1.0 threshold.
type UniquenessRule struct {
	meta
	columns   []string
	threshold float64
}

// NewUniqueness builds a uniqueness rule over one or more columns.
// Threshold is the required distinct fraction in [0, 1];
// DefaultUniquenessThreshold (1.0) demands fully distinct values.
func NewUniqueness(name, description string, severity types.Severity, columns []string, threshold float64) (*UniquenessRule, error) {
	m, err := newMeta(name, description, severity)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("rule %q: %w", name, types.ErrNoColumns)
	}
	if err := validateThreshold(name, threshold); err != nil {
		return nil, err
	}
	return &UniquenessRule{meta: m, columns: columns, threshold: threshold}, nil
}

// Type implements Rule.
func (r *UniquenessRule) Type() types.RuleType { return types.RuleTypeUniqueness }

// Validate computes per-column uniqueness = distinct non-null count / row
// count. The detail carries the duplicate count (rows minus distinct).
func (r *UniquenessRule) Validate(ds *dataset.Dataset) Result {
	res := newResult(r)

	for _, column := range r.columns {
		col, ok := ds.Column(column)
		if !ok {
			res.Details = append(res.Details,
				errorDetail(column, fmt.Sprintf("column %q not found in dataset", column)))
			continue
		}

		rows := ds.Rows()
		if rows == 0 {
			res.Details = append(res.Details, checkDetail(column, "", 0, r.threshold,
				0 >= r.threshold,
				fmt.Sprintf("uniqueness 0.0%% of 0 rows (threshold %.1f%%)", r.threshold*100)))
			continue
		}

		distinct := make(map[any]struct{}, rows)
		for _, v := range col {
			if v == nil {
				continue
			}
			distinct[distinctKey(v)] = struct{}{}
		}

		uniqueness := float64(len(distinct)) / float64(rows)
		passed := uniqueness >= r.threshold
		d := checkDetail(column, "", uniqueness, r.threshold, passed,
			fmt.Sprintf("uniqueness %.1f%% (%d/%d distinct)", uniqueness*100, len(distinct), rows))
		d.Duplicates = rows - len(distinct)
		res.Details = append(res.Details, d)
	}

	res.finalize()
	return res
}

// Config implements Rule.
func (r *UniquenessRule) Config() Config {
	threshold := r.threshold
	return Config{
		RuleType:    types.RuleTypeUniqueness,
		Columns:     r.columns,
		Threshold:   &threshold,
		Severity:    r.severity,
		Description: r.description,
	}
}
