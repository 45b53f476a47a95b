package logger

import "github.com/baditaflorin/go_fuzzy_similarity/internal/ports"

// NopLogger discards every message.
type NopLogger struct{}

// NewNopLogger returns a logger that writes nothing.
func NewNopLogger() ports.Logger {
	return NopLogger{}
}

func (NopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Close() error                                   { return nil }
