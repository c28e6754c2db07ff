package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds add_days configuration. None of it changes the date
// arithmetic; it only shapes diagnostics and error handling.
type Config struct {
	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Line loop behaviour
	Filter FilterConfig `yaml:"filter"`
}

// FilterConfig configures the stdin line loop.
type FilterConfig struct {
	OnError      string `yaml:"on_error"`       // abort, skip
	MaxLineBytes int    `yaml:"max_line_bytes"` // longest accepted input line
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Filter: FilterConfig{
			OnError:      "abort",
			MaxLineBytes: 1 << 20,
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults.
// Unlike a search-path lookup, a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated and numeric fields.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	switch c.Filter.OnError {
	case "abort", "skip":
	default:
		return fmt.Errorf("filter.on_error: unknown policy %q", c.Filter.OnError)
	}
	if c.Filter.MaxLineBytes < 64 {
		return fmt.Errorf("filter.max_line_bytes: %d is below the minimum of 64", c.Filter.MaxLineBytes)
	}
	return nil
}
