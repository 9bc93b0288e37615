// Package config handles xformtool configuration loading and management.
package config

import (
	"fmt"
	"strings"
)

// Matrix conventions accepted by Output.Convention and pipeline files.
const (
	ConventionRow    = "row"
	ConventionColumn = "column"
)

// Config holds all tool settings.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Precision   int    `yaml:"precision"`    // Digits after the decimal point
	Convention  string `yaml:"convention"`   // "row" (v*M) or "column" (M*v)
	ShowInverse bool   `yaml:"show_inverse"` // Print the inverse next to every transform
	GLLayout    bool   `yaml:"gl_layout"`    // Also print the column-major float32 layout
}

// PipelineConfig holds pipeline evaluation settings.
type PipelineConfig struct {
	// Strict turns silent fallbacks (singular inverse, zero axes) into errors.
	Strict bool `yaml:"strict"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Precision:   6,
			Convention:  ConventionRow,
			ShowInverse: false,
			GLLayout:    false,
		},
		Pipeline: PipelineConfig{
			Strict: false,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("output.precision %d out of range [0, 17]", c.Output.Precision)
	}
	switch c.Output.Convention {
	case ConventionRow, ConventionColumn:
	default:
		return fmt.Errorf("output.convention %q: want %q or %q", c.Output.Convention, ConventionRow, ConventionColumn)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	return nil
}
