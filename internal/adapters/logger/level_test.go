package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"Warning", LevelWarn},
		{"warn", LevelWarn},
		{"ERROR", LevelError},
		{" critical ", LevelCritical},
		{"", LevelError},
		{"verbose", LevelError},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.input))
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "WARNING", LevelWarn.String())
	assert.Equal(t, "ERROR", Level(42).String())
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	l.Error("ignored", "key", "value")
	assert.NoError(t, l.Close())
}
