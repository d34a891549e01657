package rules

import (
	"fmt"

	"github.com/solenne/datawarden/internal/dataset"
	"github.com/solenne/datawarden/internal/types"
)

// CompletenessRule checks that each configured column has a sufficient
// fraction of non-null values.
type CompletenessRule struct {
	meta
	columns   []string
	threshold float64
}

// NewCompleteness builds a completeness rule over one or more columns.
// Threshold is the required non-null fraction in [0, 1]; use
// DefaultCompletenessThreshold for the standard 95%.
func NewCompleteness(name, description string, severity types.Severity, columns []string, threshold float64) (*CompletenessRule, error) {
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
	return &CompletenessRule{meta: m, columns: columns, threshold: threshold}, nil
}

// Type implements Rule.
func (r *CompletenessRule) Type() types.RuleType { return types.RuleTypeCompleteness }

// Validate computes per-column completeness = non-null count / row count.
// An absent column yields an error detail; an empty table yields
// completeness 0 with an explicit note rather than a division error.
func (r *CompletenessRule) Validate(ds *dataset.Dataset) Result {
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
				fmt.Sprintf("completeness 0.0%% of 0 rows (threshold %.1f%%)", r.threshold*100)))
			continue
		}

		completeness := float64(dataset.NonNull(col)) / float64(rows)
		passed := completeness >= r.threshold
		res.Details = append(res.Details, checkDetail(column, "", completeness, r.threshold, passed,
			fmt.Sprintf("completeness %.1f%% (threshold %.1f%%)", completeness*100, r.threshold*100)))
	}

	res.finalize()
	return res
}

// Config implements Rule.
func (r *CompletenessRule) Config() Config {
	threshold := r.threshold
	return Config{
		RuleType:    types.RuleTypeCompleteness,
		Columns:     r.columns,
		Threshold:   &threshold,
		Severity:    r.severity,
		Description: r.description,
	}
}
