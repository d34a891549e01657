package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/solenne/datawarden/internal/dataset"
	"github.com/solenne/datawarden/internal/rules"
	"github.com/solenne/datawarden/internal/types"
)

/*
 * Per-dataset validation.
 *
 * Resolves the catalog rules for a dataset id and evaluates them
 * concurrently: rules never observe each other's results and share no
 * mutable state, so they fan out one goroutine each and join before the
 * report is built. Results land at their catalog index, keeping report
 * order deterministic regardless of goroutine scheduling.
 *
 * One broken rule never blocks the rest: a panic inside Validate is
 * recovered at this boundary and converted into a failed result carrying
 * the panic message as an error detail. No stack traces reach the report.
 */

// TableValidator evaluates catalog rules against supplied datasets.
// Stateless across calls; safe for concurrent use.
type TableValidator struct {
	catalog *rules.Catalog
	now     func() time.Time
}

// NewTableValidator builds a validator over a catalog.
// A nil now falls back to time.Now.
func NewTableValidator(catalog *rules.Catalog, now func() time.Time) (*TableValidator, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if now == nil {
		now = time.Now
	}
	return &TableValidator{catalog: catalog, now: now}, nil
}

// ValidateTable evaluates every rule bound to datasetID against ds.
// A dataset id with no registered rules yields a no_rules report with a
// perfect score and zero rule counts. The only error is a nil dataset.
func (v *TableValidator) ValidateTable(datasetID string, ds *dataset.Dataset) (*TableReport, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset %q: %w", datasetID, types.ErrNilDataset)
	}

	report := &TableReport{
		ReportID:    types.NewReportID(),
		DatasetID:   datasetID,
		ValidatedAt: v.now().UTC(),
	}

	rs := v.catalog.RulesFor(datasetID)
	if len(rs) == 0 {
		report.Status = types.ReportNoRules
		report.OverallScore = 100.0
		return report, nil
	}

	results := make([]rules.Result, len(rs))
	var wg sync.WaitGroup
	for i, r := range rs {
		wg.Add(1)
		go func(i int, r rules.Rule) {
			defer wg.Done()
			results[i] = evaluate(r, ds)
		}(i, r)
	}
	wg.Wait()

	report.RuleResults = results
	report.TotalRules = len(results)
	for _, res := range results {
		if res.Passed {
			report.PassedRules++
		} else {
			report.FailedRules++
		}
	}

	report.OverallScore = float64(report.PassedRules) / float64(report.TotalRules) * 100
	if report.FailedRules > 0 {
		report.Status = types.ReportFailed
	} else {
		report.Status = types.ReportPassed
	}

	return report, nil
}

// evaluate runs one rule, degrading a panic into a failed result.
func evaluate(r rules.Rule, ds *dataset.Dataset) (res rules.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			res = rules.ErrorResult(r, fmt.Sprintf("rule evaluation failed: %v", rec))
		}
	}()
	return r.Validate(ds)
}
