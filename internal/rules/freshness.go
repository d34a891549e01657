package rules

import (
	"fmt"
	"time"

	"github.com/solenne/datawarden/internal/dataset"
	"github.com/solenne/datawarden/internal/types"
)

// timestampLayouts are tried in order when parsing string timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FreshnessRule checks that the newest timestamp in a column is recent
// enough. The sole time-dependent rule: the clock is injected at
// construction so evaluations are deterministic under test.
type FreshnessRule struct {
	meta
	timestampColumn string
	maxAgeHours     float64
	now             func() time.Time
}

// NewFreshness builds a freshness rule. maxAgeHours must be positive.
// A nil now falls back to time.Now.
func NewFreshness(name, description string, severity types.Severity, timestampColumn string, maxAgeHours float64, now func() time.Time) (*FreshnessRule, error) {
	m, err := newMeta(name, description, severity)
	if err != nil {
		return nil, err
	}
	if timestampColumn == "" {
		return nil, fmt.Errorf("rule %q: %w", name, types.ErrNoColumns)
	}
	if maxAgeHours <= 0 {
		return nil, fmt.Errorf("rule %q: max age %g hours: %w", name, maxAgeHours, types.ErrInvalidMaxAge)
	}
	if now == nil {
		now = time.Now
	}
	return &FreshnessRule{meta: m, timestampColumn: timestampColumn, maxAgeHours: maxAgeHours, now: now}, nil
}

// Type implements Rule.
func (r *FreshnessRule) Type() types.RuleType { return types.RuleTypeFreshness }

// Validate parses the column as timestamps and compares the age of the
// newest one against the configured window. A missing column, an
// unparseable value, or a column with no timestamps yields an error detail.
func (r *FreshnessRule) Validate(ds *dataset.Dataset) Result {
	res := newResult(r)

	col, ok := ds.Column(r.timestampColumn)
	if !ok {
		res.Details = []Detail{
			errorDetail(r.timestampColumn,
				fmt.Sprintf("timestamp column %q not found in dataset", r.timestampColumn)),
		}
		res.finalize()
		return res
	}

	var latest time.Time
	found := false
	for _, v := range col {
		if v == nil {
			continue
		}
		ts, err := parseTimestamp(v)
		if err != nil {
			res.Details = []Detail{
				errorDetail(r.timestampColumn, fmt.Sprintf("failed to parse timestamp: %v", err)),
			}
			res.finalize()
			return res
		}
		if !found || ts.After(latest) {
			latest = ts
			found = true
		}
	}

	if !found {
		res.Details = []Detail{
			errorDetail(r.timestampColumn, "no timestamps in column"),
		}
		res.finalize()
		return res
	}

	ageHours := r.now().Sub(latest).Hours()
	passed := ageHours <= r.maxAgeHours
	res.Details = append(res.Details, checkDetail(r.timestampColumn, "", ageHours, r.maxAgeHours, passed,
		fmt.Sprintf("data age %.1f hours (max %.1f hours, latest %s)",
			ageHours, r.maxAgeHours, latest.Format(time.RFC3339))))

	res.finalize()
	return res
}

// Config implements Rule.
func (r *FreshnessRule) Config() Config {
	maxAge := r.maxAgeHours
	return Config{
		RuleType:        types.RuleTypeFreshness,
		TimestampColumn: r.timestampColumn,
		MaxAgeHours:     &maxAge,
		Severity:        r.severity,
		Description:     r.description,
	}
}

// parseTimestamp converts a cell to a time. Strings are tried against the
// known layouts; numbers are unix seconds.
func parseTimestamp(v any) (time.Time, error) {
	switch t := v.(type) {
	case string:
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized timestamp %q", t)
	case float64:
		sec := int64(t)
		nsec := int64((t - float64(sec)) * float64(time.Second))
		return time.Unix(sec, nsec).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("value %v is not a timestamp", v)
	}
}
