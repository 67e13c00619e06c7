package logger

import (
	"log/slog"
	"os"
)

var (
	level = new(slog.LevelVar)
	log   *slog.Logger
)

func init() {
	// stdout is reserved for the compression report.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	log = slog.New(handler)
}

// SetDebug switches between debug and info level.
func SetDebug(on bool) {
	if on {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	log.Error(msg, args...)
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}
