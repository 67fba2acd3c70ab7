// Package log provides a leveled, categorized logger for the application.
// The TUI owns stdout, so log output goes to a file in the data directory.
// Before Setup is called all log calls are discarded, which keeps tests quiet.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Category tags log lines by subsystem.
type Category string

const (
	CatUI    Category = "ui"
	CatNet   Category = "net"
	CatStore Category = "store"
	CatAuth  Category = "auth"
)

var (
	mu      sync.Mutex
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile *os.File
)

// Setup directs log output to the given file path, creating parent
// directories as needed. Passing level controls verbosity.
func Setup(path string, level slog.Level) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return err
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// Close flushes and closes the log file, restoring the discard logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debug logs at debug level with a category attribute.
func Debug(cat Category, msg string, args ...any) {
	current().Debug(msg, append([]any{"cat", string(cat)}, args...)...)
}

// Info logs at info level with a category attribute.
func Info(cat Category, msg string, args ...any) {
	current().Info(msg, append([]any{"cat", string(cat)}, args...)...)
}

// Warn logs at warn level with a category attribute.
func Warn(cat Category, msg string, args ...any) {
	current().Warn(msg, append([]any{"cat", string(cat)}, args...)...)
}

// Error logs at error level with a category attribute.
func Error(cat Category, msg string, args ...any) {
	current().Error(msg, append([]any{"cat", string(cat)}, args...)...)
}
