package logger

import "github.com/baditaflorin/go_word_frequency/internal/ports"

type nopLogger struct{}

// NewNop returns a logger that discards everything.
func NewNop() ports.Logger {
	return nopLogger{}
}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }
