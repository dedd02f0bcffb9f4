// Package config defines the configuration structures for fjcnorm. No I/O or
// parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"
	"time"
)

// LogConfig holds logging tunables.
type LogConfig struct {
	// Level is the minimum severity emitted: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`

	// Format selects the encoding: "console" or "json".
	Format string `mapstructure:"format"`

	// File, when non-empty, is an additional log output path beside stderr.
	File string `mapstructure:"file"`
}

// NormalizeConfig holds transformation tunables.
type NormalizeConfig struct {
	// AsOfYear substitutes for the end year of commissions with no
	// termination date. Zero means the wall-clock year at run time; setting
	// it makes runs reproducible.
	AsOfYear int `mapstructure:"as_of_year"`
}

// Config is the root configuration for the tool.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Normalize NormalizeConfig `mapstructure:"normalize"`
}

// Validate checks that every field holds a usable value. Call after
// ApplyDefaults so optional-but-defaulted fields are never seen as missing.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug|info|warn|error, got %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}

	if c.Normalize.AsOfYear < 0 {
		return fmt.Errorf("normalize.as_of_year must not be negative, got %d", c.Normalize.AsOfYear)
	}
	// A far-future year is almost certainly a typo (e.g. 20255).
	if limit := time.Now().Year() + 100; c.Normalize.AsOfYear > limit {
		return fmt.Errorf("normalize.as_of_year %d is unreasonably far in the future", c.Normalize.AsOfYear)
	}

	return nil
}
