package rules

import (
	"sort"

	"github.com/solenne/datawarden/internal/types"
)

// Catalog maps a logical dataset identifier to the ordered list of rules
// bound to it. Register entries at startup, then treat the catalog as
// read-only; RulesFor is safe for concurrent use once registration is done.
//
// Unknown identifiers return no rules rather than an error: "no rules" is a
// valid state that validators report distinctly.
type Catalog struct {
	categories map[string][]Rule
	aliases    map[string]string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		categories: make(map[string][]Rule),
		aliases:    make(map[string]string),
	}
}

// Register appends rules to a category in evaluation order.
// Adding a new dataset category never touches evaluation logic.
func (c *Catalog) Register(category string, rs ...Rule) {
	c.categories[category] = append(c.categories[category], rs...)
}

// Alias maps a concrete dataset id (e.g. a yearly table name) onto a rule
// category, so many physical tables can share one rule set.
func (c *Catalog) Alias(datasetID, category string) {
	c.aliases[datasetID] = category
}

// RulesFor resolves the ordered rules for a dataset id, following one level
// of aliasing. Unknown ids return nil.
func (c *Catalog) RulesFor(datasetID string) []Rule {
	key := datasetID
	if category, ok := c.aliases[datasetID]; ok {
		key = category
	}
	return c.categories[key]
}

// Categories returns the registered category names, sorted for
// deterministic export.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// must unwraps constructor results for the static default catalog, where a
// construction failure is a programmer error.
func must[T any](r T, err error) T {
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the built-in enterprise catalog: rule sets for the four
// standard dataset categories plus aliases for their yearly table names.
func Default() *Catalog {
	c := NewCatalog()

	c.Register("product_operations",
		must(NewCompleteness(
			"Product Incidents Completeness",
			"Ensure critical incident fields are complete",
			types.SeverityHigh,
			[]string{"id", "title", "severity"},
			0.98,
		)),
		must(NewUniqueness(
			"Incident ID Uniqueness",
			"Incident IDs must be unique",
			types.SeverityCritical,
			[]string{"id"},
			DefaultUniquenessThreshold,
		)),
		must(NewValidity(
			"Severity Values",
			"Severity must be a valid enum",
			types.SeverityMedium,
			"severity",
			Constraints{Values: []any{"low", "medium", "high", "critical"}},
		)),
	)

	c.Register("customer_support",
		must(NewCompleteness(
			"Support Metrics Completeness",
			"Essential support metrics must be complete",
			types.SeverityHigh,
			[]string{"customer_id", "ticket_id", "resolution_time"},
			DefaultCompletenessThreshold,
		)),
		must(NewValidity(
			"Resolution Time Validity",
			"Resolution time must be positive and bounded",
			types.SeverityMedium,
			"resolution_time",
			Constraints{Min: f64(0), Max: f64(7200)},
		)),
		must(NewFreshness(
			"Support Metrics Freshness",
			"Support metrics must be refreshed daily",
			types.SeverityMedium,
			"created_at",
			24,
			nil,
		)),
	)

	c.Register("business_intelligence",
		must(NewCompleteness(
			"BI Report Completeness",
			"BI reports must have complete metadata",
			types.SeverityHigh,
			[]string{"report_id", "department", "metric_value"},
			0.99,
		)),
		must(NewValidity(
			"Metric Value Range",
			"Metric values must be within expected range",
			types.SeverityMedium,
			"metric_value",
			Constraints{Min: f64(0), Max: f64(1000000)},
		)),
	)

	c.Register("user_behavior",
		must(NewUniqueness(
			"User Session Uniqueness",
			"User sessions should be unique",
			types.SeverityHigh,
			[]string{"session_id"},
			DefaultUniquenessThreshold,
		)),
		must(NewValidity(
			"User ID Format",
			"User IDs must follow the standard format",
			types.SeverityLow,
			"user_id",
			Constraints{Pattern: `user_\d+`},
		)),
	)

	c.Alias("product_operations_incidents_2025", "product_operations")
	c.Alias("customer_support_metrics_2025", "customer_support")
	c.Alias("business_intelligence_reports_2025", "business_intelligence")
	c.Alias("user_behavior_analytics_2025", "user_behavior")

	return c
}

// f64 builds a *float64 for constraint literals.
func f64(v float64) *float64 { return &v }
