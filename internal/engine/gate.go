package engine

import (
	"fmt"

	"github.com/solenne/datawarden/internal/types"
)

/*
 * Quality gate.
 *
 * CI/CD callers inspect a ValidationSummary before allowing a deployment.
 * The gate applies two checks: the combined score must clear a minimum, and
 * (optionally) no rule tagged critical may have failed anywhere in the run.
 * Each check produces a GateCheck suitable for direct display in pipeline
 * logs; the gate itself never blocks evaluation, it only judges the result.
 */

// GatePolicy configures the quality gate.
type GatePolicy struct {
	// MinOverallScore is the minimum combined average score in [0, 100].
	MinOverallScore float64

	// RequireCriticalPass fails the gate when any critical-severity rule
	// failed, regardless of the overall score.
	RequireCriticalPass bool
}

// DefaultGatePolicy mirrors the standard deployment thresholds.
func DefaultGatePolicy() GatePolicy {
	return GatePolicy{MinOverallScore: 85.0, RequireCriticalPass: true}
}

// GateCheck is one named gate criterion with its outcome.
type GateCheck struct {
	Check     string             `json:"check"`
	Status    types.DetailStatus `json:"status"`
	Actual    float64            `json:"actual"`
	Threshold float64            `json:"threshold"`
	Message   string             `json:"message"`
}

// GateResult is the combined gate outcome for a validation run.
type GateResult struct {
	Passed bool        `json:"passed"`
	Checks []GateCheck `json:"checks"`
}

// Evaluate applies the policy to a summary.
func (p GatePolicy) Evaluate(s *Summary) GateResult {
	result := GateResult{Passed: true}

	score := s.Totals.AverageScore
	scoreCheck := GateCheck{
		Check:     "overall_quality_score",
		Status:    types.DetailPassed,
		Actual:    score,
		Threshold: p.MinOverallScore,
		Message:   fmt.Sprintf("quality score %.1f%% meets threshold %.1f%%", score, p.MinOverallScore),
	}
	if score < p.MinOverallScore {
		scoreCheck.Status = types.DetailFailed
		scoreCheck.Message = fmt.Sprintf("quality score %.1f%% below threshold %.1f%%", score, p.MinOverallScore)
		result.Passed = false
	}
	result.Checks = append(result.Checks, scoreCheck)

	if p.RequireCriticalPass {
		failed := countFailedCritical(s)
		criticalCheck := GateCheck{
			Check:     "critical_rules",
			Status:    types.DetailPassed,
			Actual:    float64(failed),
			Threshold: 0,
			Message:   "all critical rules passed",
		}
		if failed > 0 {
			criticalCheck.Status = types.DetailFailed
			criticalCheck.Message = fmt.Sprintf("%d critical rule(s) failed", failed)
			result.Passed = false
		}
		result.Checks = append(result.Checks, criticalCheck)
	}

	return result
}

// countFailedCritical counts failed critical-severity rules across tables.
func countFailedCritical(s *Summary) int {
	failed := 0
	for _, report := range s.TableResults {
		for _, res := range report.RuleResults {
			if !res.Passed && res.Severity == types.SeverityCritical {
				failed++
			}
		}
	}
	return failed
}
