package logger

import "strings"

// Level is a minimum severity for emitted messages.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelCritical suppresses everything, including errors. l has no critical channel.
	LevelCritical
)

// ParseLevel maps DEBUG, INFO, WARNING (or WARN), ERROR and CRITICAL to a Level,
// ignoring case. Unknown names fall back to LevelError.
func ParseLevel(name string) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARNING", "WARN":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "CRITICAL", "FATAL":
		return LevelCritical
	}
	return LevelError
}

// String returns the canonical level name.
func (lv Level) String() string {
	switch lv {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARNING"
	case LevelCritical:
		return "CRITICAL"
	}
	return "ERROR"
}
