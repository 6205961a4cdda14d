// Package config loads CLI defaults from ROUTH_* environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/stability/internal/logging"
	"github.com/katalvlaran/stability/report"
	"github.com/katalvlaran/stability/routh"
)

// Prefix is prepended to every environment variable name.
const Prefix = "ROUTH"

// Config holds all CLI configuration.
type Config struct {
	Format      string         `envconfig:"FORMAT" default:"text"`
	PivotPolicy string         `envconfig:"PIVOT_POLICY" default:"fail"`
	PrintTable  bool           `envconfig:"PRINT_TABLE" default:"false"`
	Log         logging.Config `envconfig:"LOG"`
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Format:      string(report.FormatText),
		PivotPolicy: routh.PivotFail.String(),
		Log:         logging.DefaultConfig(),
	}
}

// Validate rejects unknown formats, pivot policies and log levels.
func (c Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid %s_FORMAT: %w", Prefix, err)
	}
	if _, err := routh.ParsePivotPolicy(c.PivotPolicy); err != nil {
		return fmt.Errorf("invalid %s_PIVOT_POLICY: %w", Prefix, err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("invalid %s_LOG_LEVEL: %w", Prefix, err)
	}

	return nil
}
