// Package config defines the stubd server configuration and its loader.
package config

import (
	"fmt"
)

// Config is the stub server configuration.
type Config struct {
	// Host is the bind address. Defaults to 127.0.0.1.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the HTTP listen port. 0 lets the OS pick one.
	Port int `json:"port" yaml:"port"`

	// SpecFile is the path to the OpenAPI document describing the stubbed API.
	SpecFile string `json:"specFile" yaml:"specFile"`

	// Fixtures is the path to the fixture library: a JSON/YAML file mapping
	// resource ids to payloads, or a directory of per-resource files.
	Fixtures string `json:"fixtures" yaml:"fixtures"`

	// ValidateRequests gates request validation against the spec.
	ValidateRequests bool `json:"validateRequests" yaml:"validateRequests"`

	// ReadTimeout is the HTTP read timeout in seconds.
	ReadTimeout int `json:"readTimeout,omitempty" yaml:"readTimeout,omitempty"`

	// WriteTimeout is the HTTP write timeout in seconds.
	WriteTimeout int `json:"writeTimeout,omitempty" yaml:"writeTimeout,omitempty"`

	// Logging configures the operational logger.
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
}

// LoggingConfig configures the operational logger.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Host:             "127.0.0.1",
		Port:             4280,
		ValidateRequests: true,
		ReadTimeout:      30,
		WriteTimeout:     30,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks the configuration for authoring mistakes.
func (c *Config) Validate() error {
	if c.SpecFile == "" {
		return fmt.Errorf("specFile is required")
	}
	if c.Fixtures == "" {
		return fmt.Errorf("fixtures is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", c.Port)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("readTimeout must not be negative, got %d", c.ReadTimeout)
	}
	if c.WriteTimeout < 0 {
		return fmt.Errorf("writeTimeout must not be negative, got %d", c.WriteTimeout)
	}
	return nil
}
