package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"WARN":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"":      zerolog.InfoLevel,
		"loud":  zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("FDC_API_KEY", "k")
	t.Setenv("FDC_CACHE_SIZE", "32")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.Client.APIKey)
	assert.Equal(t, 32, cfg.Client.CacheSize)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestInitLogsWithoutSecret(t *testing.T) {
	var buf bytes.Buffer
	InitLogger(&buf)
	defer InitLogger(nil)

	t.Setenv("FDC_API_KEY", "super-secret")
	t.Setenv("LOG_LEVEL", "debug")
	cfg, err := Load()
	require.NoError(t, err)
	cfg.Init()
	defer SetLogLevel(zerolog.InfoLevel)

	log.Logger.Debug().Msg("probe")
	assert.Contains(t, buf.String(), "configuration loaded")
	assert.NotContains(t, buf.String(), "super-secret")
}
