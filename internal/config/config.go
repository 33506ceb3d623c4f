// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Backend names the upstream model integration
type Backend string

const (
	BackendGemini Backend = "gemini"
	BackendVertex Backend = "vertex"
)

// Config holds all application configuration
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Backend Backend `env:"COACH_BACKEND" envDefault:"gemini"`
	Gemini  GeminiConfig
	Vertex  VertexConfig

	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"60s"`
	HistoryLimit    int           `env:"HISTORY_LIMIT" envDefault:"0"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// GeminiConfig holds Gemini API (generativelanguage) configuration
type GeminiConfig struct {
	// APIKey may be empty; requests then fail with a configuration error
	APIKey  string `env:"GEMINI_API_KEY"`
	Model   string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	BaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
}

// VertexConfig holds Vertex AI configuration
type VertexConfig struct {
	Project  string `env:"GCP_PROJECT"`
	Location string `env:"GCP_LOCATION" envDefault:"us-central1"`
}

// Load reads configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// HasCredential reports whether the selected backend has what it needs to
// reach the upstream model.
func (c Config) HasCredential() bool {
	switch c.Backend {
	case BackendVertex:
		return c.Vertex.Project != ""
	default:
		return c.Gemini.APIKey != ""
	}
}

// Validate checks values that would otherwise fail at request time
func (c Config) Validate() error {
	switch c.Backend {
	case BackendGemini, BackendVertex:
	default:
		return fmt.Errorf("COACH_BACKEND must be %q or %q, got %q", BackendGemini, BackendVertex, c.Backend)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("GEMINI_MODEL cannot be empty")
	}
	if c.UpstreamTimeout < 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must not be negative, got %s", c.UpstreamTimeout)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("HISTORY_LIMIT must not be negative, got %d", c.HistoryLimit)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be > 0, got %d", c.MaxBodyBytes)
	}
	return nil
}
