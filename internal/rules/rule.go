// Package rules implements the declarative data-quality checks evaluated by
// the engine: completeness, uniqueness, validity, and freshness.
package rules

import (
	"fmt"

	"github.com/solenne/datawarden/internal/dataset"
	"github.com/solenne/datawarden/internal/types"
)

/*
 * Rule contract.
 *
 * A Rule is a single quality check with a name, description, and severity,
 * constructed once and immutable thereafter. Rules carry no mutable state,
 * so one instance is safe to share across concurrent evaluations of
 * different datasets.
 *
 * Validate never returns an error and never panics for data-shape problems:
 * a missing column, an empty table, or an unparseable value becomes a detail
 * with error status on the result, and the rule is marked failed. Truly
 * invalid configuration (empty column list, threshold out of range, bad
 * regex) is a programmer error rejected at construction time instead.
 *
 * Why interface-based: the four variants share the validate(dataset)->Result
 * shape but nothing else; a shared interface with one concrete type per
 * variant keeps dispatch static and avoids reflection.
 */

// Default thresholds shared with catalog builders.
const (
	// DefaultCompletenessThreshold is the fraction of non-null values a
	// column needs unless a rule specifies otherwise.
	DefaultCompletenessThreshold = 0.95

	// DefaultUniquenessThreshold requires fully distinct values.
	DefaultUniquenessThreshold = 1.0

	// ValidityPassRate is the fixed per-constraint pass threshold: a
	// constraint passes when at least 95% of non-null values satisfy it.
	ValidityPassRate = 0.95
)

// Rule is a single declarative quality check.
type Rule interface {
	// Name returns the unique human-readable identifier of the instance.
	Name() string

	// Description explains the intent of the check.
	Description() string

	// Severity is informational only; it never alters evaluation.
	Severity() types.Severity

	// Type tags the variant (completeness, uniqueness, validity, freshness).
	Type() types.RuleType

	// Validate evaluates the rule against a dataset. The dataset is never
	// mutated. Data-shape problems surface as error details, not panics.
	Validate(ds *dataset.Dataset) Result

	// Config serializes the rule configuration for export to external
	// monitoring systems.
	Config() Config
}

// meta holds the identity fields common to every rule variant.
type meta struct {
	name        string
	description string
	severity    types.Severity
}

// newMeta validates identity fields shared by all constructors.
// An empty severity defaults to medium.
func newMeta(name, description string, severity types.Severity) (meta, error) {
	if name == "" {
		return meta{}, types.ErrEmptyRuleName
	}
	if severity == "" {
		severity = types.SeverityMedium
	}
	if !severity.Valid() {
		return meta{}, fmt.Errorf("rule %q: severity %q: %w", name, severity, types.ErrInvalidSeverity)
	}
	return meta{name: name, description: description, severity: severity}, nil
}

func (m meta) Name() string             { return m.name }
func (m meta) Description() string      { return m.description }
func (m meta) Severity() types.Severity { return m.severity }

// validateThreshold rejects fractions outside [0, 1].
func validateThreshold(name string, threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("rule %q: threshold %g: %w", name, threshold, types.ErrInvalidThreshold)
	}
	return nil
}
