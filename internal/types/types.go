// Package types provides domain models shared across DataWarden components.
//
// Zero-dependency design: types.go and errors.go use only the standard
// library so the rules engine and its consumers can share vocabulary without
// pulling in storage or transport dependencies. ID utilities in ids.go import
// uuid but are isolated for selective inclusion.
package types

// Severity is an informational priority tag attached to a rule. It never
// alters pass/fail evaluation; it is copied into results so consumers can
// prioritize failures.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid reports whether s is one of the four known severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// RuleType tags the rule variant that produced a result.
type RuleType string

const (
	RuleTypeCompleteness RuleType = "completeness"
	RuleTypeUniqueness   RuleType = "uniqueness"
	RuleTypeValidity     RuleType = "validity"
	RuleTypeFreshness    RuleType = "freshness"
)

// DetailStatus is the outcome of a single per-column or per-constraint check.
// Error covers schema problems (missing column) and parse failures; it always
// fails the owning rule.
type DetailStatus string

const (
	DetailPassed DetailStatus = "passed"
	DetailFailed DetailStatus = "failed"
	DetailError  DetailStatus = "error"
)

// ReportStatus is the aggregate outcome for one dataset.
// NoRules is a distinct, valid state: the catalog has no rules bound to the
// dataset id. Callers must not conflate it with Passed even though the
// overall score is 100.
type ReportStatus string

const (
	ReportPassed  ReportStatus = "passed"
	ReportFailed  ReportStatus = "failed"
	ReportNoRules ReportStatus = "no_rules"
)
