package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a contract violation by the caller, such as a nil word list.
var ErrInvalidInput = errors.New("invalid input")

// SourceReadError describes a source that could not be read. It is recoverable per source.
type SourceReadError struct {
	Source SourceID
	// Cause is a short human readable reason.
	Cause string
	Err   error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read %s: %s", e.Source, e.Cause)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// UsageError reports invalid invocation: missing inputs or malformed arguments.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError formats a UsageError.
func NewUsageError(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}
