package rules

import (
	"testing"

	"github.com/solenne/datawarden/internal/types"
)

func TestCatalog_RegisterAndResolve(t *testing.T) {
	c := NewCatalog()

	r1 := must(NewCompleteness("first", "", types.SeverityHigh, []string{"id"}, 0.95))
	r2 := must(NewUniqueness("second", "", types.SeverityHigh, []string{"id"}, 1.0))
	c.Register("orders", r1)
	c.Register("orders", r2)

	rs := c.RulesFor("orders")
	if len(rs) != 2 {
		t.Fatalf("len(RulesFor) = %d, want 2", len(rs))
	}
	if rs[0].Name() != "first" || rs[1].Name() != "second" {
		t.Errorf("rules out of registration order: %s, %s", rs[0].Name(), rs[1].Name())
	}
}

func TestCatalog_Alias(t *testing.T) {
	c := NewCatalog()
	c.Register("orders", must(NewCompleteness("r", "", types.SeverityHigh, []string{"id"}, 0.95)))
	c.Alias("orders_2025", "orders")

	if rs := c.RulesFor("orders_2025"); len(rs) != 1 {
		t.Errorf("len(RulesFor(alias)) = %d, want 1", len(rs))
	}

	// Aliasing resolves one level only.
	c.Alias("orders_latest", "orders_2025")
	if rs := c.RulesFor("orders_latest"); rs != nil {
		t.Errorf("RulesFor(chained alias) = %v, want nil", rs)
	}
}

func TestCatalog_Unknown(t *testing.T) {
	c := NewCatalog()
	if rs := c.RulesFor("nope"); rs != nil {
		t.Errorf("RulesFor(unknown) = %v, want nil", rs)
	}
}

func TestCatalog_Categories(t *testing.T) {
	c := NewCatalog()
	c.Register("zeta", must(NewCompleteness("r", "", types.SeverityHigh, []string{"id"}, 0.95)))
	c.Register("alpha", must(NewCompleteness("r", "", types.SeverityHigh, []string{"id"}, 0.95)))

	got := c.Categories()
	if len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("Categories() = %v, want [alpha zeta]", got)
	}
}

func TestDefault_Categories(t *testing.T) {
	c := Default()

	want := map[string]int{
		"product_operations":    3,
		"customer_support":      3,
		"business_intelligence": 2,
		"user_behavior":         2,
	}
	for category, count := range want {
		if rs := c.RulesFor(category); len(rs) != count {
			t.Errorf("RulesFor(%s) = %d rules, want %d", category, len(rs), count)
		}
	}
}

func TestDefault_YearlyAliases(t *testing.T) {
	c := Default()

	aliases := map[string]string{
		"product_operations_incidents_2025":  "product_operations",
		"customer_support_metrics_2025":      "customer_support",
		"business_intelligence_reports_2025": "business_intelligence",
		"user_behavior_analytics_2025":       "user_behavior",
	}
	for alias, category := range aliases {
		got := c.RulesFor(alias)
		want := c.RulesFor(category)
		if len(got) != len(want) {
			t.Errorf("RulesFor(%s) = %d rules, want %d (same as %s)", alias, len(got), len(want), category)
		}
	}
}

func TestDefault_CriticalUniqueness(t *testing.T) {
	c := Default()

	var found bool
	for _, r := range c.RulesFor("product_operations") {
		if r.Type() == types.RuleTypeUniqueness && r.Severity() == types.SeverityCritical {
			found = true
		}
	}
	if !found {
		t.Errorf("product_operations has no critical uniqueness rule")
	}
}
