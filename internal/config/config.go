package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (e.g. 0.0.0.0 for all interfaces)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// AnalysisConfig tunes the analysis pipeline.
type AnalysisConfig struct {
	// Timezone is the calendar used for aggregation bucketing
	// (e.g. "UTC", "Asia/Tokyo"). Bucket boundaries shift with it.
	Timezone string `mapstructure:"timezone"`
	// MaxPoints caps the size of an uploaded series; 0 disables the cap.
	MaxPoints int `mapstructure:"max_points"`
}

// Location resolves the configured timezone, falling back to UTC.
func (c AnalysisConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AuthConfig represents authentication configuration.
type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`  // Enable/disable API key authentication
	APIKeys []string `mapstructure:"api_keys"` // List of valid API keys
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, Unix, Kitchen
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("analysis config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates server configuration.
func (c *ServerConfig) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.HTTPPort)
	}
	return nil
}

// Validate validates analysis configuration.
func (c *AnalysisConfig) Validate() error {
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	if c.MaxPoints < 0 {
		return fmt.Errorf("max_points must not be negative: %d", c.MaxPoints)
	}
	return nil
}

// Validate validates logging configuration.
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Level)
	}

	switch c.Format {
	case "", "json", "console", "pretty":
	default:
		return fmt.Errorf("invalid logging format: %q", c.Format)
	}

	return nil
}
