package rules

import (
	"errors"
	"testing"

	"github.com/solenne/datawarden/internal/dataset"
	"github.com/solenne/datawarden/internal/types"
)

// mustDataset builds a dataset for tests, failing the test on shape errors.
func mustDataset(t *testing.T, names []string, columns map[string][]any) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(names, columns)
	if err != nil {
		t.Fatalf("dataset.New() error = %v", err)
	}
	return ds
}

func TestNewCompleteness_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		ruleName  string
		severity  types.Severity
		columns   []string
		threshold float64
		wantErr   error
	}{
		{
			name:      "empty rule name",
			ruleName:  "",
			severity:  types.SeverityHigh,
			columns:   []string{"id"},
			threshold: 0.95,
			wantErr:   types.ErrEmptyRuleName,
		},
		{
			name:      "unknown severity",
			ruleName:  "r",
			severity:  "urgent",
			columns:   []string{"id"},
			threshold: 0.95,
			wantErr:   types.ErrInvalidSeverity,
		},
		{
			name:      "no columns",
			ruleName:  "r",
			severity:  types.SeverityHigh,
			columns:   nil,
			threshold: 0.95,
			wantErr:   types.ErrNoColumns,
		},
		{
			name:      "threshold above one",
			ruleName:  "r",
			severity:  types.SeverityHigh,
			columns:   []string{"id"},
			threshold: 1.5,
			wantErr:   types.ErrInvalidThreshold,
		},
		{
			name:      "negative threshold",
			ruleName:  "r",
			severity:  types.SeverityHigh,
			columns:   []string{"id"},
			threshold: -0.1,
			wantErr:   types.ErrInvalidThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompleteness(tt.ruleName, "", tt.severity, tt.columns, tt.threshold)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewCompleteness() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCompleteness_DefaultSeverity(t *testing.T) {
	r, err := NewCompleteness("r", "", "", []string{"id"}, 0.95)
	if err != nil {
		t.Fatalf("NewCompleteness() error = %v, want nil", err)
	}
	if r.Severity() != types.SeverityMedium {
		t.Errorf("Severity() = %v, want medium", r.Severity())
	}
}

func TestCompleteness_Validate(t *testing.T) {
	ds := mustDataset(t, []string{"id", "title"}, map[string][]any{
		"id":    {1.0, 2.0, 3.0},
		"title": {"a", nil, "c"},
	})

	tests := []struct {
		name       string
		columns    []string
		threshold  float64
		wantPassed bool
		wantMetric float64
	}{
		{
			name:       "partial column fails at 95%",
			columns:    []string{"title"},
			threshold:  0.95,
			wantPassed: false,
			wantMetric: 2.0 / 3.0,
		},
		{
			name:       "partial column passes at 50%",
			columns:    []string{"title"},
			threshold:  0.5,
			wantPassed: true,
			wantMetric: 2.0 / 3.0,
		},
		{
			name:       "full column passes at 100%",
			columns:    []string{"id"},
			threshold:  1.0,
			wantPassed: true,
			wantMetric: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewCompleteness("r", "", types.SeverityHigh, tt.columns, tt.threshold)
			if err != nil {
				t.Fatalf("NewCompleteness() error = %v", err)
			}

			res := r.Validate(ds)
			if res.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v", res.Passed, tt.wantPassed)
			}
			if len(res.Details) != 1 {
				t.Fatalf("len(Details) = %d, want 1", len(res.Details))
			}
			d := res.Details[0]
			if d.Metric == nil || *d.Metric != tt.wantMetric {
				t.Errorf("Metric = %v, want %v", d.Metric, tt.wantMetric)
			}
			if d.Threshold == nil || *d.Threshold != tt.threshold {
				t.Errorf("Threshold = %v, want %v", d.Threshold, tt.threshold)
			}
		})
	}
}

func TestCompleteness_PerColumnDetails(t *testing.T) {
	ds := mustDataset(t, []string{"id", "title"}, map[string][]any{
		"id":    {1.0, 2.0},
		"title": {nil, nil},
	})

	r, err := NewCompleteness("r", "", types.SeverityHigh, []string{"id", "title"}, 0.95)
	if err != nil {
		t.Fatalf("NewCompleteness() error = %v", err)
	}

	res := r.Validate(ds)
	if res.Passed {
		t.Errorf("Passed = true, want false")
	}
	if len(res.Details) != 2 {
		t.Fatalf("len(Details) = %d, want 2", len(res.Details))
	}
	if res.Details[0].Status != types.DetailPassed {
		t.Errorf("Details[0].Status = %v, want passed", res.Details[0].Status)
	}
	if res.Details[1].Status != types.DetailFailed {
		t.Errorf("Details[1].Status = %v, want failed", res.Details[1].Status)
	}
}

func TestCompleteness_MissingColumn(t *testing.T) {
	ds := mustDataset(t, []string{"id"}, map[string][]any{"id": {1.0}})

	r, err := NewCompleteness("r", "", types.SeverityHigh, []string{"absent"}, 0.95)
	if err != nil {
		t.Fatalf("NewCompleteness() error = %v", err)
	}

	res := r.Validate(ds)
	if res.Passed {
		t.Errorf("Passed = true, want false")
	}
	if len(res.Details) != 1 {
		t.Fatalf("len(Details) = %d, want 1", len(res.Details))
	}
	d := res.Details[0]
	if d.Status != types.DetailError {
		t.Errorf("Status = %v, want error", d.Status)
	}
	if d.Metric != nil || d.Threshold != nil {
		t.Errorf("error detail carries metric/threshold, want nil")
	}
}

func TestCompleteness_EmptyTable(t *testing.T) {
	ds := mustDataset(t, []string{"id"}, map[string][]any{"id": nil})

	r, err := NewCompleteness("r", "", types.SeverityHigh, []string{"id"}, 0.95)
	if err != nil {
		t.Fatalf("NewCompleteness() error = %v", err)
	}

	res := r.Validate(ds)
	if res.Passed {
		t.Errorf("Passed = true, want false for empty table at threshold 0.95")
	}
	if len(res.Details) != 1 {
		t.Fatalf("len(Details) = %d, want 1", len(res.Details))
	}
	if d := res.Details[0]; d.Metric == nil || *d.Metric != 0 {
		t.Errorf("Metric = %v, want 0 for empty table", d.Metric)
	}

	// Threshold 0 is satisfiable even with no rows.
	r0, err := NewCompleteness("r0", "", types.SeverityHigh, []string{"id"}, 0)
	if err != nil {
		t.Fatalf("NewCompleteness() error = %v", err)
	}
	if res := r0.Validate(ds); !res.Passed {
		t.Errorf("Passed = false at threshold 0, want true")
	}
}
