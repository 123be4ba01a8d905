// Package config loads settings for the fdc command-line tool.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fdcapi/fdcapi/client"
)

// Config holds CLI configuration: the client settings read from FDC_* plus
// the log level.
type Config struct {
	Client   client.Config
	LogLevel zerolog.Level
}

type cliEnv struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads FDC_* variables and LOG_LEVEL from the environment.
func Load() (*Config, error) {
	cc, err := client.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	var env cliEnv
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &Config{Client: *cc, LogLevel: ParseLogLevel(env.LogLevel)}, nil
}

// Init initializes logging and reports the effective configuration.
func (c *Config) Init() {
	SetLogLevel(c.LogLevel)

	log.Debug().
		Str("base_url", c.Client.BaseURL).
		Dur("http_timeout", c.Client.HTTPTimeout).
		Int("cache_size", c.Client.CacheSize).
		Bool("api_key_present", c.Client.APIKey != "").
		Bool("api_key_header", c.Client.APIKeyHeader).
		Str("log_level", c.LogLevel.String()).
		Msg("configuration loaded")
}
