package rules

import (
	"fmt"
	"regexp"

	"github.com/solenne/datawarden/internal/dataset"
	"github.com/solenne/datawarden/internal/types"
)

/*
 * Validity checks.
 *
 * A ValidityRule binds one column to a set of constraints. Each configured
 * constraint is evaluated independently against the column's non-null
 * values and produces its own detail; the rule passes only when every
 * constraint individually clears the fixed ValidityPassRate (95% of values
 * valid).
 *
 * Constraint kinds:
 *   - min/max: inclusive numeric bounds; values that fail numeric coercion
 *     count as invalid
 *   - pattern: the stringified value must match the regex in full (the
 *     pattern is anchored at compile time)
 *   - values: membership in an allowed-value set with numeric-tolerant
 *     equality
 *
 * Nulls are excluded from the denominator before checking; a column with no
 * non-null values has validity rate 0 for every constraint.
 */

// Constraints configures a ValidityRule. At least one field must be set.
type Constraints struct {
	Min     *float64 // inclusive numeric lower bound
	Max     *float64 // inclusive numeric upper bound
	Pattern string   // regex the full stringified value must match
	Values  []any    // allowed-value set
}

func (c Constraints) empty() bool {
	return c.Min == nil && c.Max == nil && c.Pattern == "" && len(c.Values) == 0
}

// ValidityRule checks a single column against its configured constraints.
type ValidityRule struct {
	meta
	column      string
	constraints Constraints
	pattern     *regexp.Regexp // compiled, full-match anchored
}

// NewValidity builds a validity rule. A malformed pattern is a configuration
// error and is rejected here rather than surfacing during evaluation.
func NewValidity(name, description string, severity types.Severity, column string, constraints Constraints) (*ValidityRule, error) {
	m, err := newMeta(name, description, severity)
	if err != nil {
		return nil, err
	}
	if column == "" {
		return nil, fmt.Errorf("rule %q: %w", name, types.ErrNoColumns)
	}
	if constraints.empty() {
		return nil, fmt.Errorf("rule %q: %w", name, types.ErrNoConstraints)
	}

	var pattern *regexp.Regexp
	if constraints.Pattern != "" {
		// Anchor so partial matches don't count as valid.
		pattern, err = regexp.Compile(`\A(?:` + constraints.Pattern + `)\z`)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %q: %w", name, constraints.Pattern, types.ErrInvalidPattern)
		}
	}

	return &ValidityRule{meta: m, column: column, constraints: constraints, pattern: pattern}, nil
}

// Type implements Rule.
func (r *ValidityRule) Type() types.RuleType { return types.RuleTypeValidity }

// Validate evaluates each configured constraint independently.
// A missing column yields a single error detail.
func (r *ValidityRule) Validate(ds *dataset.Dataset) Result {
	res := newResult(r)

	col, ok := ds.Column(r.column)
	if !ok {
		res.Details = []Detail{
			errorDetail(r.column, fmt.Sprintf("column %q not found in dataset", r.column)),
		}
		res.finalize()
		return res
	}

	values := make([]any, 0, len(col))
	for _, v := range col {
		if v != nil {
			values = append(values, v)
		}
	}

	if r.constraints.Min != nil {
		min := *r.constraints.Min
		res.Details = append(res.Details, r.constraintDetail("min", values, func(v any) bool {
			f, ok := toFloat64(v)
			return ok && f >= min
		}))
	}
	if r.constraints.Max != nil {
		max := *r.constraints.Max
		res.Details = append(res.Details, r.constraintDetail("max", values, func(v any) bool {
			f, ok := toFloat64(v)
			return ok && f <= max
		}))
	}
	if r.pattern != nil {
		res.Details = append(res.Details, r.constraintDetail("pattern", values, func(v any) bool {
			return r.pattern.MatchString(toString(v))
		}))
	}
	if len(r.constraints.Values) > 0 {
		res.Details = append(res.Details, r.constraintDetail("values", values, func(v any) bool {
			return inSet(v, r.constraints.Values)
		}))
	}

	res.finalize()
	return res
}

// constraintDetail counts valid values and builds the per-constraint detail.
func (r *ValidityRule) constraintDetail(kind string, values []any, valid func(any) bool) Detail {
	validCount := 0
	for _, v := range values {
		if valid(v) {
			validCount++
		}
	}

	rate := 0.0
	if len(values) > 0 {
		rate = float64(validCount) / float64(len(values))
	}
	passed := rate >= ValidityPassRate

	d := checkDetail(r.column, kind, rate, ValidityPassRate, passed,
		fmt.Sprintf("%s constraint: %.1f%% valid (%d/%d)", kind, rate*100, validCount, len(values)))
	return d
}

// Config implements Rule.
func (r *ValidityRule) Config() Config {
	constraints := make(map[string]any)
	if r.constraints.Min != nil {
		constraints["min"] = *r.constraints.Min
	}
	if r.constraints.Max != nil {
		constraints["max"] = *r.constraints.Max
	}
	if r.constraints.Pattern != "" {
		constraints["pattern"] = r.constraints.Pattern
	}
	if len(r.constraints.Values) > 0 {
		constraints["values"] = r.constraints.Values
	}
	return Config{
		RuleType:    types.RuleTypeValidity,
		Column:      r.column,
		Constraints: constraints,
		Severity:    r.severity,
		Description: r.description,
	}
}
