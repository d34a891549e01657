package engine

import (
	"errors"
	"testing"

	"github.com/solenne/datawarden/internal/dataset"
	"github.com/solenne/datawarden/internal/rules"
	"github.com/solenne/datawarden/internal/types"
)

// newTestOrchestrator wires a validator over the given catalog.
func newTestOrchestrator(t *testing.T, catalog *rules.Catalog) *Orchestrator {
	t.Helper()
	v, err := NewTableValidator(catalog, fixedClock)
	if err != nil {
		t.Fatalf("NewTableValidator() error = %v", err)
	}
	o, err := NewOrchestrator(v, fixedClock)
	if err != nil {
		t.Fatalf("NewOrchestrator() error = %v", err)
	}
	return o
}

func TestNewOrchestrator_NilValidator(t *testing.T) {
	if _, err := NewOrchestrator(nil, nil); err == nil {
		t.Errorf("NewOrchestrator(nil) error = nil, want error")
	}
}

func TestValidateAll_Totals(t *testing.T) {
	catalog := rules.NewCatalog()
	catalog.Register("clean", passingRule("a", types.SeverityHigh), passingRule("b", types.SeverityLow))
	catalog.Register("dirty", passingRule("c", types.SeverityHigh), failingRule("d", types.SeverityLow))

	o := newTestOrchestrator(t, catalog)

	sets := []dataset.Named{
		{ID: "clean", Data: mustDataset(t, []string{"id"}, map[string][]any{"id": {1.0}})},
		{ID: "dirty", Data: mustDataset(t, []string{"id"}, map[string][]any{"id": {1.0}})},
	}

	summary, err := o.ValidateAll(sets)
	if err != nil {
		t.Fatalf("ValidateAll() error = %v", err)
	}

	if summary.TotalTables != 2 {
		t.Errorf("TotalTables = %d, want 2", summary.TotalTables)
	}
	if summary.Totals.TotalRules != 4 || summary.Totals.PassedRules != 3 || summary.Totals.FailedRules != 1 {
		t.Errorf("totals = %d/%d/%d, want 4/3/1",
			summary.Totals.TotalRules, summary.Totals.PassedRules, summary.Totals.FailedRules)
	}
	if summary.Totals.AverageScore != 75.0 {
		t.Errorf("AverageScore = %v, want 75", summary.Totals.AverageScore)
	}

	clean := summary.TableResults["clean"]
	if clean == nil || clean.Status != types.ReportPassed {
		t.Errorf("clean report = %+v, want passed", clean)
	}
	dirty := summary.TableResults["dirty"]
	if dirty == nil || dirty.Status != types.ReportFailed {
		t.Errorf("dirty report = %+v, want failed", dirty)
	}
}

func TestValidateAll_PreservesInputOrder(t *testing.T) {
	o := newTestOrchestrator(t, rules.NewCatalog())

	ids := []string{"zeta", "alpha", "mid"}
	sets := make([]dataset.Named, len(ids))
	for i, id := range ids {
		sets[i] = dataset.Named{ID: id, Data: mustDataset(t, []string{"id"}, map[string][]any{"id": {1.0}})}
	}

	summary, err := o.ValidateAll(sets)
	if err != nil {
		t.Fatalf("ValidateAll() error = %v", err)
	}

	for i, id := range ids {
		if summary.Order[i] != id {
			t.Errorf("Order[%d] = %q, want %q", i, summary.Order[i], id)
		}
	}
}

func TestValidateAll_NoRulesDatasets(t *testing.T) {
	o := newTestOrchestrator(t, rules.NewCatalog())

	sets := []dataset.Named{
		{ID: "unknown", Data: mustDataset(t, []string{"id"}, map[string][]any{"id": {1.0}})},
	}

	summary, err := o.ValidateAll(sets)
	if err != nil {
		t.Fatalf("ValidateAll() error = %v", err)
	}

	if summary.Totals.TotalRules != 0 {
		t.Errorf("TotalRules = %d, want 0", summary.Totals.TotalRules)
	}
	if summary.Totals.AverageScore != 0 {
		t.Errorf("AverageScore = %v, want 0 when no rules ran", summary.Totals.AverageScore)
	}
	if summary.TableResults["unknown"].Status != types.ReportNoRules {
		t.Errorf("Status = %v, want no_rules", summary.TableResults["unknown"].Status)
	}
}

func TestValidateAll_Empty(t *testing.T) {
	o := newTestOrchestrator(t, rules.NewCatalog())

	summary, err := o.ValidateAll(nil)
	if err != nil {
		t.Fatalf("ValidateAll(nil) error = %v", err)
	}
	if summary.TotalTables != 0 || len(summary.TableResults) != 0 {
		t.Errorf("summary = %+v, want empty", summary)
	}
}

func TestValidateAll_InvalidInput(t *testing.T) {
	o := newTestOrchestrator(t, rules.NewCatalog())
	ds := mustDataset(t, []string{"id"}, map[string][]any{"id": {1.0}})

	t.Run("duplicate ids", func(t *testing.T) {
		_, err := o.ValidateAll([]dataset.Named{{ID: "x", Data: ds}, {ID: "x", Data: ds}})
		if err == nil {
			t.Errorf("ValidateAll() error = nil, want duplicate id error")
		}
	})

	t.Run("nil dataset", func(t *testing.T) {
		_, err := o.ValidateAll([]dataset.Named{{ID: "x", Data: nil}})
		if !errors.Is(err, types.ErrNilDataset) {
			t.Errorf("ValidateAll() error = %v, want ErrNilDataset", err)
		}
	})
}
