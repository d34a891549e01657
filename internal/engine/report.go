// Package engine aggregates rule evaluations into per-dataset reports and
// cross-dataset summaries.
package engine

import (
	"time"

	"github.com/solenne/datawarden/internal/rules"
	"github.com/solenne/datawarden/internal/types"
)

// TableReport is the aggregated outcome of evaluating all catalog rules
// bound to one dataset identifier.
//
// Invariants: PassedRules + FailedRules == TotalRules, and OverallScore is
// always in [0, 100]. Reports are immutable once built and safe to hand to
// any consumer without synchronization.
type TableReport struct {
	ReportID     types.ReportID     `json:"report_id"`
	DatasetID    string             `json:"dataset_id"`
	ValidatedAt  time.Time          `json:"validated_at"`
	Status       types.ReportStatus `json:"status"`
	TotalRules   int                `json:"total_rules"`
	PassedRules  int                `json:"passed_rules"`
	FailedRules  int                `json:"failed_rules"`
	OverallScore float64            `json:"overall_score"`
	RuleResults  []rules.Result     `json:"rule_results"`
}

// Totals aggregates rule counts across every table in a summary.
// AverageScore is a weighted aggregate (passed/total across all datasets
// combined), not a mean of per-table percentages.
type Totals struct {
	TotalRules   int     `json:"total_rules"`
	PassedRules  int     `json:"passed_rules"`
	FailedRules  int     `json:"failed_rules"`
	AverageScore float64 `json:"average_score"`
}

// Summary is the outcome of one orchestration pass over multiple datasets.
// Order preserves input iteration order for reproducible rendering; the
// JSON mapping itself is keyed by dataset id.
type Summary struct {
	ValidatedAt  time.Time               `json:"validated_at"`
	TotalTables  int                     `json:"total_tables"`
	TableResults map[string]*TableReport `json:"table_results"`
	Totals       Totals                  `json:"summary"`

	Order []string `json:"-"`
}
