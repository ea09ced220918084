package qcircuit

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with qcircuit-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithQubit adds a qubit id field to the logger.
func (l *Logger) WithQubit(id uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("qubit", id),
	}
}

// WithOp adds an operator kind field to the logger.
func (l *Logger) WithOp(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", kind),
	}
}

// LogQubit logs a qubit allocation.
func (l *Logger) LogQubit(id, base, n uint64, err error) {
	if err != nil {
		l.Error("qubit allocation failed",
			"n", n,
			"error", err,
		)
	} else {
		l.Debug("qubit allocated",
			"id", id,
			"base_index", base,
			"n", n,
		)
	}
}

// LogOp logs an operator-producing merge.
func (l *Logger) LogOp(kind string, numIndices int, err error) {
	if err != nil {
		l.Error("operator build failed",
			"kind", kind,
			"error", err,
		)
	} else {
		l.Debug("operator built",
			"kind", kind,
			"indices", numIndices,
		)
	}
}

// LogMeasurement logs a measurement marker.
func (l *Logger) LogMeasurement(kind string, handle uint64, numIndices int) {
	l.Debug("measurement added",
		"kind", kind,
		"handle", handle,
		"indices", numIndices,
	)
}
