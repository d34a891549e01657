package engine

import (
	"testing"

	"github.com/solenne/datawarden/internal/rules"
	"github.com/solenne/datawarden/internal/types"
)

// summaryWith builds a one-table summary from canned rule results.
func summaryWith(score float64, results ...rules.Result) *Summary {
	report := &TableReport{
		DatasetID:   "t",
		RuleResults: results,
	}
	return &Summary{
		TotalTables:  1,
		TableResults: map[string]*TableReport{"t": report},
		Order:        []string{"t"},
		Totals:       Totals{AverageScore: score},
	}
}

func TestGate_ScoreThreshold(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		wantPassed bool
	}{
		{name: "above threshold", score: 90, wantPassed: true},
		{name: "exactly at threshold", score: 85, wantPassed: true},
		{name: "below threshold", score: 84.9, wantPassed: false},
	}

	policy := GatePolicy{MinOverallScore: 85.0}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := policy.Evaluate(summaryWith(tt.score))
			if result.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v", result.Passed, tt.wantPassed)
			}
			if len(result.Checks) != 1 {
				t.Fatalf("len(Checks) = %d, want 1 without critical check", len(result.Checks))
			}
			if result.Checks[0].Check != "overall_quality_score" {
				t.Errorf("Check = %q, want overall_quality_score", result.Checks[0].Check)
			}
		})
	}
}

func TestGate_CriticalRules(t *testing.T) {
	policy := DefaultGatePolicy()

	t.Run("critical failure rejects despite high score", func(t *testing.T) {
		summary := summaryWith(95,
			rules.Result{RuleName: "crit", Severity: types.SeverityCritical, Passed: false},
			rules.Result{RuleName: "ok", Severity: types.SeverityLow, Passed: true},
		)

		result := policy.Evaluate(summary)
		if result.Passed {
			t.Errorf("Passed = true, want false with failed critical rule")
		}
		if len(result.Checks) != 2 {
			t.Fatalf("len(Checks) = %d, want 2", len(result.Checks))
		}
		if result.Checks[1].Status != types.DetailFailed {
			t.Errorf("critical check status = %v, want failed", result.Checks[1].Status)
		}
		if result.Checks[1].Actual != 1 {
			t.Errorf("critical check actual = %v, want 1", result.Checks[1].Actual)
		}
	})

	t.Run("non-critical failures pass the critical check", func(t *testing.T) {
		summary := summaryWith(90,
			rules.Result{RuleName: "warn", Severity: types.SeverityHigh, Passed: false},
		)

		result := policy.Evaluate(summary)
		if !result.Passed {
			t.Errorf("Passed = false, want true when only non-critical rules failed")
		}
	})

	t.Run("passing critical rules pass", func(t *testing.T) {
		summary := summaryWith(100,
			rules.Result{RuleName: "crit", Severity: types.SeverityCritical, Passed: true},
		)

		if result := policy.Evaluate(summary); !result.Passed {
			t.Errorf("Passed = false, want true")
		}
	})
}

func TestGate_BothChecksFail(t *testing.T) {
	policy := DefaultGatePolicy()
	summary := summaryWith(40,
		rules.Result{RuleName: "crit", Severity: types.SeverityCritical, Passed: false},
	)

	result := policy.Evaluate(summary)
	if result.Passed {
		t.Errorf("Passed = true, want false")
	}
	for _, check := range result.Checks {
		if check.Status != types.DetailFailed {
			t.Errorf("check %s status = %v, want failed", check.Check, check.Status)
		}
	}
}

func TestDefaultGatePolicy(t *testing.T) {
	p := DefaultGatePolicy()
	if p.MinOverallScore != 85.0 || !p.RequireCriticalPass {
		t.Errorf("DefaultGatePolicy() = %+v, want score 85 with critical pass required", p)
	}
}
