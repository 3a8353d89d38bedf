package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all userdeck configuration.
type Config struct {
	// Profile endpoint
	Endpoint EndpointConfig `yaml:"endpoint"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// EndpointConfig configures the profile generator endpoint.
type EndpointConfig struct {
	BaseURL   string `yaml:"base_url" env:"USERDECK_ENDPOINT"`
	Timeout   string `yaml:"timeout" env:"USERDECK_TIMEOUT"` // empty = no timeout
	UserAgent string `yaml:"user_agent,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Endpoint: EndpointConfig{
			BaseURL: "https://randomuser.me/api",
			Timeout: "",
		},
		UI: *DefaultUIConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "userdeck.log",
		},
	}
}

// Load loads configuration from a YAML file and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies USERDECK_* environment variables on top of the
// file values. Unset variables leave fields alone.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// GetRequestTimeout returns the endpoint timeout as a duration. Zero means
// requests never time out.
func (c *Config) GetRequestTimeout() time.Duration {
	if c.Endpoint.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Endpoint.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid endpoint base_url %q: %w", c.Endpoint.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint base_url %q must use http or https", c.Endpoint.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint base_url %q has no host", c.Endpoint.BaseURL)
	}

	if c.Endpoint.Timeout != "" {
		if _, err := time.ParseDuration(c.Endpoint.Timeout); err != nil {
			return fmt.Errorf("invalid endpoint timeout %q: %w", c.Endpoint.Timeout, err)
		}
	}

	if !isValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if c.Logging.Format != "" && c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid logging format: %s (valid: json, text)", c.Logging.Format)
	}

	if !isValidTheme(c.UI.Theme) {
		return fmt.Errorf("invalid ui theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}

	return nil
}
