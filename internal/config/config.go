// Package config provides configuration management for the actresses client.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"actresses/pkg/utils"
)

// Defaults applied before a configuration file is read.
const (
	DefaultBaseURL        = "http://localhost:3333"
	DefaultTimeoutSec     = 30
	DefaultMaxConcurrency = 8
	DefaultMaxBodyKb      = 10 * 1024
	DefaultUserAgent      = "actresses-client/1.0"
	DefaultLogLevel       = "info"
	DefaultLogBackend     = BackendSlog
)

// Logging backends.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Configuration validation errors.
var (
	ErrMissingBaseURL     = errors.New("client.base_url is required")
	ErrInvalidBaseURL     = errors.New("client.base_url must be an absolute http(s) URL")
	ErrInvalidTimeout     = errors.New("client.timeout_sec must be at least 1")
	ErrInvalidConcurrency = errors.New("client.max_concurrency must be at least 1")
	ErrInvalidRateLimit   = errors.New("client.rate_limit_rps must be non-negative")
	ErrInvalidMaxBody     = errors.New("client.max_body_kb must be at least 1")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogBackend  = errors.New("logging.backend must be 'slog' or 'zap'")
)

// Config represents the complete client configuration.
type Config struct {
	Client     ClientConfig     `yaml:"client"`
	Logging    LoggingConfig    `yaml:"logging"`
	Validation ValidationConfig `yaml:"validation"`
}

// ClientConfig describes how the remote service is reached.
type ClientConfig struct {
	BaseURL        string  `yaml:"base_url"`
	UserAgent      string  `yaml:"user_agent"`
	TimeoutSec     int     `yaml:"timeout_sec"`
	MaxConcurrency int     `yaml:"max_concurrency"`
	MaxBodyKb      int     `yaml:"max_body_kb"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
}

// ValidationConfig tunes the record shape check.
type ValidationConfig struct {
	OptionalDeathYear bool `yaml:"optional_death_year"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Backend string `yaml:"backend"`
}

// Default returns a configuration pointing at the local development service.
func Default() *Config {
	return &Config{
		Client: ClientConfig{
			BaseURL:        DefaultBaseURL,
			UserAgent:      DefaultUserAgent,
			TimeoutSec:     DefaultTimeoutSec,
			MaxConcurrency: DefaultMaxConcurrency,
			MaxBodyKb:      DefaultMaxBodyKb,
		},
		Logging: LoggingConfig{
			Level:   DefaultLogLevel,
			Backend: DefaultLogBackend,
		},
	}
}

// LoadConfig loads configuration from YAML file. Keys absent from the file keep their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Client.BaseURL) == "" {
		return ErrMissingBaseURL
	}

	if !utils.NewHTTPHelper().IsValidURL(c.Client.BaseURL) {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Client.BaseURL)
	}

	if c.Client.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Client.MaxConcurrency < 1 {
		return ErrInvalidConcurrency
	}

	if c.Client.RateLimitRPS < 0 {
		return ErrInvalidRateLimit
	}

	if c.Client.MaxBodyKb < 1 {
		return ErrInvalidMaxBody
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Backend != BackendSlog && c.Logging.Backend != BackendZap {
		return ErrInvalidLogBackend
	}

	return nil
}

// GetTimeout returns the per-request timeout.
func (c *ClientConfig) GetTimeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// GetMaxBodyBytes returns the response body size limit in bytes.
func (c *ClientConfig) GetMaxBodyBytes() int64 {
	return int64(c.MaxBodyKb) * 1024
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{BaseURL: %s, Timeout: %ds, MaxConcurrency: %d, Logging: %s/%s}",
		c.Client.BaseURL,
		c.Client.TimeoutSec,
		c.Client.MaxConcurrency,
		c.Logging.Backend,
		c.Logging.Level,
	)
}
