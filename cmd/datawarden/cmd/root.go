package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configFile string
	dbURL      string
)

var rootCmd = &cobra.Command{
	Use:   "datawarden",
	Short: "DataWarden data quality validation engine",
	Long:  `DataWarden evaluates declarative quality rules (completeness, uniqueness, validity, freshness) against tabular datasets and reports per-rule diagnostics with aggregate scores.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "database connection URL (sqlite://path or postgres://...)")
}

func Execute() error {
	return rootCmd.Execute()
}
