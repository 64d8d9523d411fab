// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// APIKeyEnv names the variable holding the Inference API credential.
const APIKeyEnv = "HUGGINGFACE_API_KEY"

// ErrMissingAPIKey is returned by Load when no credential is configured.
var ErrMissingAPIKey = errors.New("config: " + APIKeyEnv + " is not set")

// Config is the process configuration, read once at startup.
type Config struct {
	APIKey       string        `envconfig:"HUGGINGFACE_API_KEY"` //nolint:gosec // configuration field, not a hardcoded secret
	BaseURL      string        `envconfig:"HUGGINGFACE_BASE_URL" default:"https://api-inference.huggingface.co/models"`
	DefaultModel string        `envconfig:"INTEGRA_DEFAULT_MODEL" default:"microsoft/DialoGPT-large"`
	Timeout      time.Duration `envconfig:"INTEGRA_TIMEOUT" default:"30s"`
	LogLevel     string        `envconfig:"INTEGRA_LOG_LEVEL" default:"info"`
}

// LoadDotEnv loads environment variables from path. Missing files are ignored.
// Variables already present in the environment are not overridden.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	return nil
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseURL == "" {
		return fmt.Errorf("config: HUGGINGFACE_BASE_URL must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: INTEGRA_TIMEOUT must be positive, got %s", c.Timeout)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: INTEGRA_LOG_LEVEL: %w", err)
	}

	return level, nil
}
