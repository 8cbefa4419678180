// Package logger provides a simple leveled logger for the application.
// It supports three levels: off (no output), normal (info/warn/error),
// and verbose (includes debug). The logger is safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelNormal:
		return "normal"
	case LevelVerbose:
		return "verbose"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel maps a config or flag value onto a level. It accepts the
// level names plus the common aliases quiet/info/debug.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "quiet", "none":
		return LevelOff, nil
	case "", "normal", "info", "warn":
		return LevelNormal, nil
	case "verbose", "debug":
		return LevelVerbose, nil
	}
	return LevelOff, fmt.Errorf("unknown log level %q", s)
}

// state is shared between a logger and the children created by Named,
// so SetLevel on any of them applies to all.
type state struct {
	mu    sync.RWMutex
	level Level
	out   io.Writer
}

// Logger is a leveled logger. All methods are safe for concurrent use.
type Logger struct {
	st     *state
	debug  *log.Logger
	info   *log.Logger
	warn   *log.Logger
	errLog *log.Logger
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return newLogger(&state{level: level, out: out}, "")
}

func newLogger(st *state, component string) *Logger {
	flags := log.Ltime
	if component != "" {
		flags |= log.Lmsgprefix
		component += ": "
	}
	return &Logger{
		st:     st,
		debug:  log.New(st.out, "[DBG] "+component, flags),
		info:   log.New(st.out, "[INF] "+component, flags),
		warn:   log.New(st.out, "[WRN] "+component, flags),
		errLog: log.New(st.out, "[ERR] "+component, flags),
	}
}

// Named returns a child logger whose lines carry the component name.
// The child shares the parent's level and output.
func (l *Logger) Named(component string) *Logger {
	if l == nil {
		return nil
	}
	return newLogger(l.st, component)
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.st.mu.Lock()
	defer l.st.mu.Unlock()
	l.st.level = level
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	l.st.mu.RLock()
	defer l.st.mu.RUnlock()
	return l.st.level
}

func (l *Logger) enabled(min Level) bool {
	if l == nil {
		return false
	}
	l.st.mu.RLock()
	defer l.st.mu.RUnlock()
	return l.st.level >= min
}

// Debug logs a message at debug level (only visible in verbose mode).
func (l *Logger) Debug(format string, args ...any) {
	if l.enabled(LevelVerbose) {
		l.debug.Output(2, fmt.Sprintf(format, args...))
	}
}

// Info logs a message at info level.
func (l *Logger) Info(format string, args ...any) {
	if l.enabled(LevelNormal) {
		l.info.Output(2, fmt.Sprintf(format, args...))
	}
}

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, args ...any) {
	if l.enabled(LevelNormal) {
		l.warn.Output(2, fmt.Sprintf(format, args...))
	}
}

// Error logs a message at error level.
func (l *Logger) Error(format string, args ...any) {
	if l.enabled(LevelNormal) {
		l.errLog.Output(2, fmt.Sprintf(format, args...))
	}
}
