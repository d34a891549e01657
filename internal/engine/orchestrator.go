package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/solenne/datawarden/internal/dataset"
	"github.com/solenne/datawarden/internal/types"
)

// Orchestrator evaluates the table validator across multiple named datasets
// and aggregates the reports into a cross-dataset summary. Datasets are
// independent, so they validate concurrently; the summary preserves input
// order for reproducible output.
type Orchestrator struct {
	validator *TableValidator
	now       func() time.Time
}

// NewOrchestrator builds an orchestrator. A nil now falls back to time.Now.
func NewOrchestrator(validator *TableValidator, now func() time.Time) (*Orchestrator, error) {
	if validator == nil {
		return nil, fmt.Errorf("validator cannot be nil")
	}
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{validator: validator, now: now}, nil
}

// ValidateAll validates every named dataset and aggregates totals.
// Duplicate dataset ids and nil datasets are invalid input and rejected up
// front; per-rule failures never surface here, they stay inside reports.
func (o *Orchestrator) ValidateAll(sets []dataset.Named) (*Summary, error) {
	seen := make(map[string]bool, len(sets))
	for _, s := range sets {
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate dataset id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Data == nil {
			return nil, fmt.Errorf("dataset %q: %w", s.ID, types.ErrNilDataset)
		}
	}

	reports := make([]*TableReport, len(sets))
	var wg sync.WaitGroup
	for i, s := range sets {
		wg.Add(1)
		go func(i int, s dataset.Named) {
			defer wg.Done()
			// Error impossible here: datasets were nil-checked above.
			reports[i], _ = o.validator.ValidateTable(s.ID, s.Data)
		}(i, s)
	}
	wg.Wait()

	summary := &Summary{
		ValidatedAt:  o.now().UTC(),
		TotalTables:  len(sets),
		TableResults: make(map[string]*TableReport, len(sets)),
		Order:        make([]string, len(sets)),
	}

	for i, report := range reports {
		summary.Order[i] = report.DatasetID
		summary.TableResults[report.DatasetID] = report
		summary.Totals.TotalRules += report.TotalRules
		summary.Totals.PassedRules += report.PassedRules
		summary.Totals.FailedRules += report.FailedRules
	}

	if summary.Totals.TotalRules > 0 {
		summary.Totals.AverageScore =
			float64(summary.Totals.PassedRules) / float64(summary.Totals.TotalRules) * 100
	}

	return summary, nil
}
