// Package zap provides a zap-backed implementation of types.Logger.
package zap

import (
	"go.uber.org/zap"

	"github.com/dileepthomas86/spring-data-cassandra/types"
)

// Logger adapts a zap.SugaredLogger to the types.Logger interface.
//
// The method sets match directly; the adapter exists so call sites depend on
// types.Logger rather than zap.
type Logger struct {
	sugar *zap.SugaredLogger
}

// Compile-time assertion that Logger implements types.Logger.
var _ types.Logger = (*Logger)(nil)

// New wraps a zap logger for use as a types.Logger.
//
// Parameters:
//   - logger: The zap logger to wrap
//
// Returns:
//   - *Logger: An adapter implementing types.Logger
//
// Example:
//
//	zl, _ := zap.NewProduction()
//	tmpl, _ := cassandra.NewTemplate(session,
//	    cassandra.WithLogger(zaplog.New(zl)),
//	)
func New(logger *zap.Logger) *Logger {
	return &Logger{sugar: logger.Sugar()}
}

// NewSugared wraps an existing sugared logger.
func NewSugared(sugar *zap.SugaredLogger) *Logger {
	return &Logger{sugar: sugar}
}

// Debug logs a debug-level message with key/value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with key/value pairs.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn logs a warning-level message with key/value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with key/value pairs.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}
