package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/baditaflorin/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomStdLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewCustomStdLogger(l.Config{Output: &buf, MinLevel: slog.LevelDebug}, LevelWarn)
	require.NoError(t, err)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message", "file", "a.txt")
	log.Error("Error processing file", "file", "b.txt", "cause", "file not found")
	require.NoError(t, log.Close())

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "Error processing file")
	assert.Contains(t, out, "b.txt")
}

func TestCriticalLevelSuppressesErrors(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLeveledLogger(Options{Output: &buf, Level: LevelCritical})
	require.NoError(t, err)

	log.Error("Error processing file", "file", "b.txt")
	require.NoError(t, log.Close())
	assert.Empty(t, buf.String())
}
