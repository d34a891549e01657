// Package config provides configuration management for DataWarden commands.
package config

import "time"

// Config holds settings shared by the validate, serve, and export commands.
// Gate thresholds live here so CI callers tune them per environment rather
// than per invocation.
type Config struct {
	// DataDir is the directory scanned for <dataset_id>.csv files.
	DataDir string

	// HTTPHost and HTTPPort bind the report API server.
	HTTPHost string
	HTTPPort int

	// RequestTimeout bounds report API request handling.
	RequestTimeout time.Duration

	// ReportLimit caps report listings returned by the API.
	ReportLimit int

	// GateMinScore is the minimum combined quality score for the gate.
	GateMinScore float64

	// GateRequireCriticalPass fails the gate when any critical rule failed.
	GateRequireCriticalPass bool
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		DataDir:                 "./data",
		HTTPHost:                "0.0.0.0",
		HTTPPort:                8080,
		RequestTimeout:          30 * time.Second,
		ReportLimit:             50,
		GateMinScore:            85.0,
		GateRequireCriticalPass: true,
	}
}
