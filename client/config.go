package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings that can come from the environment.
// Environment variables are parsed with the FDC_ prefix, e.g. FDC_API_KEY.
type Config struct {
	APIKey       string        `envconfig:"API_KEY"`
	BaseURL      string        `envconfig:"BASE_URL" default:"https://api.nal.usda.gov/fdc/v1"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug        bool          `envconfig:"DEBUG" default:"false"`
	CacheSize    int           `envconfig:"CACHE_SIZE" default:"0"`
	APIKeyHeader bool          `envconfig:"API_KEY_HEADER" default:"false"`
}

// ConfigFromEnv reads Config from FDC_* environment variables.
func ConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("FDC", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// Options converts the configuration into construction options.
func (cfg Config) Options() []Option {
	var opts []Option
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	if cfg.CacheSize > 0 {
		opts = append(opts, WithCache(cfg.CacheSize))
	}
	if cfg.APIKeyHeader {
		opts = append(opts, WithAPIKeyHeader())
	}
	return opts
}

// NewFromConfig constructs a Client from cfg. Extra options are applied after
// the configured ones and win on conflict.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	return New(cfg.APIKey, append(cfg.Options(), opts...)...)
}

// NewFromEnv constructs a Client from FDC_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(*cfg, opts...)
}
