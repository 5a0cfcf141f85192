package arenago

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with arena-specific context.
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

// WithPartition adds a partition name field to the logger.
func (l *Logger) WithPartition(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("partition", name),
	}
}

// WithBytes adds a byte count field to the logger.
func (l *Logger) WithBytes(n uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("bytes", n),
	}
}

// LogAddPartition logs a partition registration.
func (l *Logger) LogAddPartition(name string, id uint32, bytes uint64, err error) {
	if err != nil {
		l.Error("add partition failed",
			"partition", name,
			"error", err,
		)
	} else {
		l.Debug("partition added",
			"partition", name,
			"id", id,
			"bytes", bytes,
		)
	}
}

// LogReset logs an arena reset.
func (l *Logger) LogReset(partitions int) {
	l.Debug("arena reset",
		"partitions", partitions,
	)
}

// LogClose logs an arena close.
func (l *Logger) LogClose(err error) {
	if err != nil {
		l.Error("close failed",
			"error", err,
		)
	} else {
		l.Debug("arena closed")
	}
}
