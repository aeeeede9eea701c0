// Package logging provides the console logger shared by the pattern
// examples. Every example prints through a Logger instead of writing to
// stdout directly, so demo output can be silenced or captured in tests.
package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger is a simple leveled, printf-style logging interface.
type Logger interface {
	// Debug logs a message at debug level
	Debug(format string, args ...interface{})

	// Info logs a message at info level
	Info(format string, args ...interface{})

	// Warn logs a message at warning level
	Warn(format string, args ...interface{})

	// Error logs a message at error level
	Error(format string, args ...interface{})
}

// NoopLogger discards everything.
type NoopLogger struct{}

// Debug implements Logger.Debug
func (l *NoopLogger) Debug(format string, args ...interface{}) {}

// Info implements Logger.Info
func (l *NoopLogger) Info(format string, args ...interface{}) {}

// Warn implements Logger.Warn
func (l *NoopLogger) Warn(format string, args ...interface{}) {}

// Error implements Logger.Error
func (l *NoopLogger) Error(format string, args ...interface{}) {}

// NewNoop creates a logger that discards all messages.
func NewNoop() Logger {
	return &NoopLogger{}
}

// ConsoleLogger writes level-prefixed lines to a writer.
type ConsoleLogger struct {
	out io.Writer
}

// NewConsole creates a logger that writes to stdout.
func NewConsole() Logger {
	return &ConsoleLogger{out: os.Stdout}
}

// NewConsoleTo creates a logger that writes to the given writer.
// Useful for capturing demo output in tests.
func NewConsoleTo(out io.Writer) Logger {
	return &ConsoleLogger{out: out}
}

func (l *ConsoleLogger) log(level, format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

// Debug implements Logger.Debug
func (l *ConsoleLogger) Debug(format string, args ...interface{}) {
	l.log("DEBUG", format, args...)
}

// Info implements Logger.Info
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.log("INFO", format, args...)
}

// Warn implements Logger.Warn
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.log("WARN", format, args...)
}

// Error implements Logger.Error
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.log("ERROR", format, args...)
}
