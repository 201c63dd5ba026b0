package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 120, cfg.RateLimit)
	assert.Equal(t, "*", cfg.AllowedOrigin)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TAXSPLIT_ADDR", ":9090")
	t.Setenv("TAXSPLIT_LOG_FORMAT", "json")
	t.Setenv("TAXSPLIT_RATE_LIMIT", "30")
	t.Setenv("TAXSPLIT_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown log level", key: "TAXSPLIT_LOG_LEVEL", value: "verbose"},
		{name: "unknown log format", key: "TAXSPLIT_LOG_FORMAT", value: "xml"},
		{name: "zero rate limit", key: "TAXSPLIT_RATE_LIMIT", value: "0"},
		{name: "unparsable duration", key: "TAXSPLIT_READ_TIMEOUT", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
