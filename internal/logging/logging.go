// Package logging provides structured file logging for harpoon.
//
// The overlay owns the terminal, so logs never go to stdout or stderr.
// Everything is written as JSON lines to $XDG_STATE_HOME/harpoon/harpoon.log.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

var (
	logger  = clog.New(io.Discard)
	logFile *os.File
)

// Init opens the log file and installs a JSON logger at the given level.
// Level "off" (or "disable") keeps the discard logger. Errors are returned
// so the caller can decide whether to continue without file logging.
func Init(level string) error {
	switch strings.ToLower(level) {
	case "off", "disable", "none":
		return nil
	}

	dir, err := logDir()
	if err != nil {
		return fmt.Errorf("log directory: %w", err)
	}
	path := filepath.Join(dir, "harpoon.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(level),
	})
	l.SetFormatter(clog.JSONFormatter)

	logFile = f
	logger = l.With("pid", os.Getpid())
	return nil
}

// Get returns the current logger.
func Get() *clog.Logger {
	return logger
}

// Shutdown closes the log file.
func Shutdown() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = clog.New(io.Discard)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }

// Info logs an informational message.
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { logger.Warn(msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { logger.Error(msg, args...) }

func logDir() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(stateHome, "harpoon")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// parseLevel converts a string level to clog.Level.
func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "info":
		return clog.InfoLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}
