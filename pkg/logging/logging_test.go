package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", want: slog.LevelInfo},
		{in: "loud", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelInfo, true)

	logger.Debug("hidden")
	logger.Info("Computed joint tax", "joint_base", 109914.0)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Computed joint tax", entry["msg"])
	assert.Equal(t, 109914.0, entry["joint_base"])
}

func TestNewWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelWarn, false)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("RPC error", "code", "invalid_argument")
	assert.Contains(t, buf.String(), "RPC error")
	assert.Contains(t, buf.String(), "invalid_argument")
}
