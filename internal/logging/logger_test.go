package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", "debug", slog.LevelDebug, true},
		{"upper case", "INFO", slog.LevelInfo, true},
		{"warning alias", "warning", slog.LevelWarn, true},
		{"error", " error ", slog.LevelError, true},
		{"unknown", "verbose", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	t.Run("defaults to warn", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, false, "")
		logger.Info("hidden")
		logger.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("debug flag enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, true, "")
		logger.Debug("details", "network", "sepolia")
		assert.Contains(t, buf.String(), "details")
		assert.Contains(t, buf.String(), "network=sepolia")
	})

	t.Run("level name overrides debug flag", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, true, "error")
		logger.Warn("hidden")
		require.Empty(t, buf.String())
	})

	t.Run("no timestamps", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, false, "")
		logger.Warn("shown")
		assert.NotContains(t, buf.String(), "time=")
	})
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/config/resolve.go", shortPath("/home/dev/src/chaincfg/internal/config/resolve.go"))
	assert.Equal(t, "main.go", shortPath("/somewhere/else/main.go"))
}
