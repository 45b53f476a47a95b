package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

// Options selects where and how log lines are written.
type Options struct {
	// Output receives log lines. Ignored when File is set.
	Output io.Writer
	// File appends log lines to the named file.
	File string
	// JSON switches from text to JSON lines.
	JSON bool
}

// StdLogger adapts the l.Logger to the ports.Logger interface.
type StdLogger struct {
	logger l.Logger
	file   *os.File
}

// Config builds the l.Config used for every logger of this module.
func Config(output io.Writer, jsonFormat bool) l.Config {
	return l.Config{
		Output:      output,
		JsonFormat:  jsonFormat,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	}
}

// NewStdLogger creates a text logger on stdout.
func NewStdLogger() (ports.Logger, error) {
	return New(Options{Output: os.Stdout})
}

// New creates a logger from opts, opening opts.File for appending when set.
func New(opts Options) (ports.Logger, error) {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	var file *os.File
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		output = f
	}

	logger, err := l.NewStandardFactory().CreateLogger(Config(output, opts.JSON))
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &StdLogger{logger: logger, file: file}, nil
}

// NewCustomStdLogger creates a new standard logger with custom configuration.
func NewCustomStdLogger(config l.Config) (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger}, nil
}

// FromExisting creates a new StdLogger from an existing l.Logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes the logger and closes the log file it owns, if any.
func (s *StdLogger) Close() error {
	err := s.logger.Close()
	if s.file != nil {
		if cerr := s.file.Close(); cerr != nil && !errors.Is(cerr, os.ErrClosed) && err == nil {
			err = cerr
		}
	}
	return err
}
