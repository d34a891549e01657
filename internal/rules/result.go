package rules

import "github.com/solenne/datawarden/internal/types"

// Detail is one per-column or per-constraint outcome inside a rule result.
// Metric and Threshold are pointers so error details (missing column, parse
// failure) omit them from JSON instead of reporting a misleading zero.
type Detail struct {
	Column     string             `json:"column,omitempty"`
	Constraint string             `json:"constraint,omitempty"`
	Metric     *float64           `json:"metric,omitempty"`
	Threshold  *float64           `json:"threshold,omitempty"`
	Duplicates int                `json:"duplicates,omitempty"`
	Status     types.DetailStatus `json:"status"`
	Message    string             `json:"message"`
}

// Result is the structured outcome of evaluating one rule against one
// dataset. Owned by the evaluation call that produced it: immutable and safe
// to hand to any consumer without synchronization.
//
// Invariant: Passed is true iff at least one detail exists and no detail has
// failed or error status.
type Result struct {
	RuleName string         `json:"rule_name"`
	RuleType types.RuleType `json:"rule_type"`
	Severity types.Severity `json:"severity"`
	Passed   bool           `json:"passed"`
	Details  []Detail       `json:"details"`
}

// newResult seeds a result with the rule's identity fields.
func newResult(r Rule) Result {
	return Result{
		RuleName: r.Name(),
		RuleType: r.Type(),
		Severity: r.Severity(),
	}
}

// finalize derives Passed from the collected details.
func (r *Result) finalize() {
	r.Passed = len(r.Details) > 0
	for _, d := range r.Details {
		if d.Status != types.DetailPassed {
			r.Passed = false
			return
		}
	}
}

// ErrorResult builds a degenerate failed result with a single error detail.
// The validator uses it when a rule evaluation panics; tests use it to
// assert the degraded shape.
func ErrorResult(r Rule, message string) Result {
	res := newResult(r)
	res.Details = []Detail{{Status: types.DetailError, Message: message}}
	res.Passed = false
	return res
}

// errorDetail reports a schema or parse problem for a column.
func errorDetail(column, message string) Detail {
	return Detail{Column: column, Status: types.DetailError, Message: message}
}

// checkDetail reports a computed metric compared against a threshold.
func checkDetail(column, constraint string, metric, threshold float64, passed bool, message string) Detail {
	status := types.DetailFailed
	if passed {
		status = types.DetailPassed
	}
	return Detail{
		Column:     column,
		Constraint: constraint,
		Metric:     &metric,
		Threshold:  &threshold,
		Status:     status,
		Message:    message,
	}
}
