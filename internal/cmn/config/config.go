package config

import (
	"fmt"
	"slices"
)

// Config holds the overall configuration for the application.
type Config struct {
	Core     Core
	Paths    PathsConfig
	Warnings []string
}

// Core contains global configuration settings.
type Core struct {
	// Debug enables debug-level logging with source locations.
	Debug bool
	// LogFormat is "text" or "json".
	LogFormat string
}

// PathsConfig represents file system paths used by the application.
type PathsConfig struct {
	// DataDir holds the entitlement record, its lock and the installation id.
	DataDir        string
	ConfigDir      string
	ConfigFileUsed string
}

var validLogFormats = []string{"text", "json"}

// Validate performs basic validation on the configuration.
func (c *Config) Validate() error {
	if c.Paths.DataDir == "" {
		return fmt.Errorf("data directory is not set")
	}
	if !slices.Contains(validLogFormats, c.Core.LogFormat) {
		return fmt.Errorf("invalid log format: %q (must be one of %v)", c.Core.LogFormat, validLogFormats)
	}
	return nil
}
