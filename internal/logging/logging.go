// Package logging provides a structured logging wrapper around
// charmbracelet/log. The core packages (ast, parser, gen) never log; only
// the CLI and the preview server go through here.
package logging

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Field name constants for structured logging.
const (
	FieldError    = "error"
	FieldInput    = "input"
	FieldOutput   = "output"
	FieldAddr     = "addr"
	FieldPath     = "path"
	FieldMethod   = "method"
	FieldStatus   = "status"
	FieldBytes    = "bytes"
	FieldBlocks   = "blocks"
	FieldDuration = "duration"
	FieldVersion  = "version"
	FieldCommit   = "commit"
	FieldBuilt    = "built"
)

var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

func getDefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// New creates a new logger with the specified level.
// Valid levels: "debug", "info", "warn", "error".
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	setLoggerLevel(logger, level)
	return logger
}

func setLoggerLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	return getDefaultLogger()
}

// SetDefault sets the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel updates the log level of the default logger.
func SetLevel(level string) {
	setLoggerLevel(getDefaultLogger(), level)
}

type contextKey struct{}

var loggerKey = contextKey{}

// FromContext retrieves a Logger from context, or returns the default logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger returns a context with the given logger attached.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}
