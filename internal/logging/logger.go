// Package logging wraps charmbracelet/log with an adoclint-flavored default.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Shared logger is intentional for convenience.
var (
	defaultMu     sync.RWMutex
	defaultLogger = NewWithWriter(os.Stderr, "info")
)

// NewWithWriter creates a logger writing to w at the given level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

// New creates a stderr logger at the given level.
// Valid levels: debug, info, warn, error.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// parseLevel maps a level name to a log level, defaulting to info for
// anything it does not recognize.
func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "":
		return log.InfoLevel
	case "warning":
		return log.WarnLevel
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}

// Default returns the shared logger.
func Default() *log.Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the shared logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// SetLevel changes the shared logger's level.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
