package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
// Environment variables use the DW_ prefix with dots replaced by
// underscores (e.g. DW_HTTP_PORT, DW_GATE_MIN_SCORE).
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults matching DefaultConfig
	v.SetDefault("data_dir", "./data")
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.request_timeout", "30s")
	v.SetDefault("http.report_limit", 50)
	v.SetDefault("gate.min_score", 85.0)
	v.SetDefault("gate.require_critical_pass", true)

	// Bind environment variables with DW_ prefix
	v.SetEnvPrefix("DW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		DataDir:                 v.GetString("data_dir"),
		HTTPHost:                v.GetString("http.host"),
		HTTPPort:                v.GetInt("http.port"),
		RequestTimeout:          v.GetDuration("http.request_timeout"),
		ReportLimit:             v.GetInt("http.report_limit"),
		GateMinScore:            v.GetFloat64("gate.min_score"),
		GateRequireCriticalPass: v.GetBool("gate.require_critical_pass"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig checks port range and value bounds.
func validateConfig(cfg *Config) error {
	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", cfg.HTTPPort)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("http.request_timeout must be positive, got %v", cfg.RequestTimeout)
	}
	if cfg.ReportLimit <= 0 {
		return fmt.Errorf("http.report_limit must be positive, got %d", cfg.ReportLimit)
	}
	if cfg.GateMinScore < 0 || cfg.GateMinScore > 100 {
		return fmt.Errorf("gate.min_score must be between 0 and 100, got %g", cfg.GateMinScore)
	}
	return nil
}
