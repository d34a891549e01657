package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/solenne/datawarden/internal/core/config"
	"github.com/solenne/datawarden/internal/core/db"
	"github.com/solenne/datawarden/internal/core/store"
	"github.com/solenne/datawarden/internal/dataset"
	"github.com/solenne/datawarden/internal/engine"
	"github.com/solenne/datawarden/internal/rules"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate CSV datasets against the quality rule catalog",
	Long: `Loads every <dataset_id>.csv from the data directory, evaluates the rules
bound to each dataset id, and prints per-rule diagnostics with aggregate
scores. With --db-url the reports are persisted; with --gate the command
fails when the quality gate rejects the run.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("data-dir", "", "directory of CSV datasets (overrides config)")
	validateCmd.Flags().Bool("gate", false, "apply the quality gate and fail on rejection")
	validateCmd.Flags().Bool("json", false, "print the full summary as JSON instead of tables")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dataDir := cfg.DataDir
	if cmd.Flags().Changed("data-dir") {
		dataDir, _ = cmd.Flags().GetString("data-dir")
	}

	sets, err := dataset.LoadDir(dataDir)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		return fmt.Errorf("no CSV datasets found in %s", dataDir)
	}

	validator, err := engine.NewTableValidator(rules.Default(), nil)
	if err != nil {
		return err
	}
	orchestrator, err := engine.NewOrchestrator(validator, nil)
	if err != nil {
		return err
	}

	summary, err := orchestrator.ValidateAll(sets)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return err
		}
	} else {
		renderSummary(summary)
	}

	if dbURL != "" {
		database, err := db.Open(dbURL)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		st, err := store.New(database)
		if err != nil {
			return err
		}
		if err := st.SaveSummary(context.Background(), summary); err != nil {
			return fmt.Errorf("failed to persist reports: %w", err)
		}
		log.Printf("Persisted %d report(s)", summary.TotalTables)
	}

	gate, _ := cmd.Flags().GetBool("gate")
	if gate {
		policy := engine.GatePolicy{
			MinOverallScore:     cfg.GateMinScore,
			RequireCriticalPass: cfg.GateRequireCriticalPass,
		}
		result := policy.Evaluate(summary)
		for _, check := range result.Checks {
			log.Printf("gate %s: %s: %s", check.Check, check.Status, check.Message)
		}
		if !result.Passed {
			return fmt.Errorf("quality gate failed")
		}
	}

	return nil
}

// renderSummary prints one table per dataset plus combined totals.
func renderSummary(summary *engine.Summary) {
	for _, id := range summary.Order {
		report := summary.TableResults[id]
		fmt.Printf("\n%s  [%s]  score %.1f%%  (%d/%d rules passed)\n",
			report.DatasetID, report.Status, report.OverallScore,
			report.PassedRules, report.TotalRules)

		if len(report.RuleResults) == 0 {
			continue
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"Rule", "Type", "Severity", "Status", "Details"})
		for _, res := range report.RuleResults {
			status := "passed"
			if !res.Passed {
				status = "failed"
			}
			messages := make([]string, len(res.Details))
			for i, d := range res.Details {
				messages[i] = d.Message
			}
			tw.AppendRow(table.Row{res.RuleName, res.RuleType, res.Severity, status,
				strings.Join(messages, "; ")})
		}
		tw.Render()
	}

	fmt.Printf("\nTotal: %d table(s), %d/%d rules passed, combined score %.1f%%\n",
		summary.TotalTables, summary.Totals.PassedRules,
		summary.Totals.TotalRules, summary.Totals.AverageScore)
}
