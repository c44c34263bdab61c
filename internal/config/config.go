// Package config loads application configuration from environment variables.
// All variables use the A11Y_ prefix.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	CurriculumPath string // empty = built-in WCAG curriculum
	Journal        JournalConfig
	Log            LogConfig
}

// JournalConfig holds attempt journal settings.
type JournalConfig struct {
	DSN string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // empty = no log file
}

// Load reads configuration from environment variables with A11Y_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		CurriculumPath: envStr("A11Y_CURRICULUM", ""),
		Journal: JournalConfig{
			DSN: envStr("A11Y_JOURNAL_DSN", ":memory:"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(envStr("A11Y_LOG_LEVEL", "info")),
			Format: strings.ToLower(envStr("A11Y_LOG_FORMAT", "text")),
			File:   envStr("A11Y_LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("A11Y_LOG_LEVEL must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("A11Y_LOG_FORMAT must be 'text' or 'json', got %q", c.Log.Format)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
