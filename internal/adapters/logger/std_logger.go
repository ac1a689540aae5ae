package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/baditaflorin/go_word_frequency/internal/ports"
	"github.com/baditaflorin/l"
)

// StdLogger adapts the l.Logger to the ports.Logger interface.
// Messages below the configured level are dropped before reaching l.
type StdLogger struct {
	logger l.Logger
	level  Level
}

// Options configures a StdLogger.
type Options struct {
	Output     io.Writer
	Level      Level
	JSONFormat bool
}

// NewLeveledLogger creates a logger writing to opts.Output and filtering by opts.Level.
func NewLeveledLogger(opts Options) (ports.Logger, error) {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	return NewCustomStdLogger(l.Config{
		Output:      opts.Output,
		MinLevel:    slog.LevelDebug,
		JsonFormat:  opts.JSONFormat,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
	}, opts.Level)
}

// NewCustomStdLogger creates a logger from a full l configuration. Messages below level are
// dropped before config.MinLevel is consulted.
func NewCustomStdLogger(config l.Config, level Level) (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger, level: level}, nil
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	if s.level <= LevelDebug {
		s.logger.Debug(msg, keysAndValues...)
	}
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	if s.level <= LevelInfo {
		s.logger.Info(msg, keysAndValues...)
	}
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	if s.level <= LevelWarn {
		s.logger.Warn(msg, keysAndValues...)
	}
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	if s.level <= LevelError {
		s.logger.Error(msg, keysAndValues...)
	}
}

// Close flushes and closes the logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

// FromExisting creates a new StdLogger from an existing l.Logger that logs every level.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger, level: LevelDebug}
}
