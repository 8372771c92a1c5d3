package config

import (
	"fmt"
	"slices"
)

// LoggerConfig holds structured logging configuration.
type LoggerConfig struct {
	// Level is the minimum level emitted (debug, info, warn, error).
	Level string
	// Format selects the encoder (json for machines, console for humans).
	Format string
	// Output is where log lines go (stdout, stderr, or a file path).
	Output string
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

// LoadLoggerConfigFromEnv loads logger configuration from environment variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", "json"),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	if !slices.Contains(logLevels, c.Level) {
		return fmt.Errorf("invalid log level: %s (must be one of %v)", c.Level, logLevels)
	}
	if !slices.Contains(logFormats, c.Format) {
		return fmt.Errorf("invalid log format: %s (must be one of %v)", c.Format, logFormats)
	}
	return nil
}

// IsProduction reports whether the logger should use the production preset.
// JSON output at info or above counts as production.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}
