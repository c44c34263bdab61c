package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/a11ytutor/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nope", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSONToFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("submission", "exercise_id", "1.1.1", "passed", true)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "submission", rec["msg"])
	assert.Equal(t, "1.1.1", rec["exercise_id"])
	assert.Equal(t, true, rec["passed"])
}

func TestNew_TextLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	logger.Info("quiet")
	assert.Empty(t, buf.String())
	logger.Warn("loud")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestNew_NilFallbackDiscards(t *testing.T) {
	logger, closer, err := New(config.LogConfig{Level: "info", Format: "text"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, closer)
	assert.NotPanics(t, func() { logger.Info("dropped") })
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a11y.log")
	logger, closer, err := New(config.LogConfig{Level: "info", Format: "text", File: path}, nil)
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNew_BadFile(t *testing.T) {
	_, _, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "missing", "x.log")}, nil)
	assert.Error(t, err)
}
