package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is the global logger instance. It writes through slog's default
// handler until Setup runs, so packages can log from tests.
var Log = slog.Default()

// Setup initializes the global logger based on the environment and level
func Setup(env, level string) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a child logger carrying the given attributes
func With(args ...any) *slog.Logger {
	return Log.With(args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Log.Info(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Log.Error(msg, args...)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}
