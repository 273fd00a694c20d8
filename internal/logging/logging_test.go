package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, "json", "info")

		logger.Debug("hidden")
		logger.Info("page rendered", "path", "/")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "page rendered", record["msg"])
		assert.Equal(t, "/", record["path"])
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("text format is the default and becomes slog.Default", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter(&buf, "", "")

		slog.Debug("toggled", "state", "open")

		assert.Contains(t, buf.String(), "msg=toggled")
		assert.Contains(t, buf.String(), "state=open")
		assert.Contains(t, buf.String(), "source=")
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelDebug,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}
