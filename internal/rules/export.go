package rules

import (
	"time"

	"github.com/solenne/datawarden/internal/types"
)

// Config is the transport serialization of one rule's configuration, the
// shape published to external monitoring systems. Variant-specific fields
// are omitted when unset.
type Config struct {
	RuleType        types.RuleType `json:"rule_type"`
	Columns         []string       `json:"columns,omitempty"`
	Column          string         `json:"column,omitempty"`
	TimestampColumn string         `json:"timestamp_column,omitempty"`
	Threshold       *float64       `json:"threshold,omitempty"`
	MaxAgeHours     *float64       `json:"max_age_hours,omitempty"`
	Constraints     map[string]any `json:"constraints,omitempty"`
	Severity        types.Severity `json:"severity"`
	Description     string         `json:"description"`
}

// ConfigDocument is a full catalog export.
type ConfigDocument struct {
	Version     string              `json:"version"`
	GeneratedAt time.Time           `json:"generated_at"`
	Rules       map[string][]Config `json:"rules"`
}

// ExportConfig serializes every rule in the catalog, grouped by category.
// A nil now falls back to time.Now.
func ExportConfig(c *Catalog, now func() time.Time) ConfigDocument {
	if now == nil {
		now = time.Now
	}

	doc := ConfigDocument{
		Version:     "1.0",
		GeneratedAt: now().UTC(),
		Rules:       make(map[string][]Config, len(c.categories)),
	}

	for _, category := range c.Categories() {
		rs := c.categories[category]
		configs := make([]Config, len(rs))
		for i, r := range rs {
			configs[i] = r.Config()
		}
		doc.Rules[category] = configs
	}

	return doc
}
