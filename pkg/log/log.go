package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Package log provides a thin wrapper around the Go standard library logger
// used across the SDK and the CLI. It adds:
//   - Named loggers per API area via For(name), e.g. For("search")
//   - Automatic message prefix: "[<name>]"
//   - Warn and Debug levels (Info is the default level, Error is also provided)
//   - Ability to enable debug globally or selectively per area
//
// NOTE: The package name intentionally collides with stdlib "log". When
// importing this package alongside the standard library, alias one of them.

// Level names are fixed.
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelDebug = "DEBUG"
)

// Logger is a named logger with leveled helper methods.
type Logger struct {
	name string
	std  *log.Logger
}

var (
	mu          sync.Mutex
	loggers     = map[string]*Logger{}
	debugAreas  = map[string]bool{}
	globalDebug bool
	output      io.Writer = os.Stderr
)

// For returns (and memoizes) a named logger for the given API area. The name
// SHOULD be stable (e.g. the service name: "search", "catalogs", "auth").
func For(name string) *Logger {
	if name == "" {
		name = "unknown"
	}
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	l := &Logger{
		name: name,
		std:  log.New(output, "", log.LstdFlags|log.Lmicroseconds),
	}
	loggers[name] = l
	return l
}

// SetGlobalDebug enables or disables debug logging for every logger.
func SetGlobalDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	globalDebug = enabled
}

// EnableDebugFor enables debug logging for a single area.
func EnableDebugFor(name string) {
	mu.Lock()
	defer mu.Unlock()
	debugAreas[name] = true
}

// DisableDebugFor disables debug logging for a single area.
func DisableDebugFor(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(debugAreas, name)
}

// DebugEnabledFor reports whether debug is enabled for the given area, either
// globally or specifically.
func DebugEnabledFor(name string) bool {
	mu.Lock()
	defer mu.Unlock()
	return globalDebug || debugAreas[name]
}

// SetOutput sets the output writer for all loggers, existing and future.
func SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	output = w
	for _, l := range loggers {
		l.std.SetOutput(w)
	}
}

func (l *Logger) logInternal(level, msg string) {
	l.std.Println(level + " [" + l.name + "] " + msg)
}

// Infof logs an informational message with fmt.Sprintf semantics.
func (l *Logger) Infof(format string, args ...any) {
	l.logInternal(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.logInternal(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.logInternal(LevelError, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message if debug is enabled globally or for this area.
func (l *Logger) Debugf(format string, args ...any) {
	if !DebugEnabledFor(l.name) {
		return
	}
	l.logInternal(LevelDebug, fmt.Sprintf(format, args...))
}
