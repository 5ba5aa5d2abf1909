package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, ParseLevel(input), "ParseLevel(%q)", input)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "warn"})

	logger.Info("hidden message")
	logger.Warn("visible message", "user_id", "sara")

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "visible message")
	assert.Contains(t, out, "user_id=sara")
}

func TestInitWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		log.SetOutput(os.Stderr)
	})

	logger, closer, err := Init(Options{Dir: dir, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("store opened", "driver", "sqlite")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "chatdo.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "store opened"), "log file should contain the record")
}

func TestToJournalKey(t *testing.T) {
	assert.Equal(t, "USER_ID", toJournalKey("user_id"))
	assert.Equal(t, "TOOL_NAME", toJournalKey("tool.name"))
	assert.Equal(t, "ERROR", toJournalKey("error"))
}
