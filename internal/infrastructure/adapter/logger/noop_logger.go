package logger

import (
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
)

// NoopLogger discards everything. Used by tests and when logging is disabled.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

// SetLevel sets the minimum log level to output
func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

func (l *NoopLogger) Debug(string, core.Fields) {}
func (l *NoopLogger) Info(string, core.Fields)  {}
func (l *NoopLogger) Warn(string, core.Fields)  {}
func (l *NoopLogger) Error(string, core.Fields) {}

// Flush is a no-op
func (l *NoopLogger) Flush() error { return nil }
