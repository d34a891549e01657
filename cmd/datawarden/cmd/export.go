package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/solenne/datawarden/internal/rules"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the rule catalog as monitoring configuration JSON",
	Long: `Serializes every rule in the catalog (type, target columns, thresholds,
constraints, severity, description) for publishing to an external
monitoring system.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("output", "", "write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	doc := rules.ExportConfig(rules.Default(), nil)

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
