// Package logger provides the coloured, prefixed loggers used across the application.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/labyrinth/config"
)

var (
	ErrMissingPrefix = errors.New("logger prefix is required")
	ErrMissingWriter = errors.New("logger writer is required")
)

// Logger writes "[PREFIX] [LEVEL] message" lines.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a logger that tags every line with prefix, coloured with the given ANSI code.
// An empty color disables colouring.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrMissingPrefix
	}
	if w == nil {
		return nil, ErrMissingWriter
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", config.LogInfoColor, msg)
}

// Warning logs a condition that did not stop the operation.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", config.LogWarningColor, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write("ERROR", config.LogErrorColor, msg)
}

func (l *Logger) write(level, levelColor, msg string) {
	if l.color == "" {
		l.out.Printf("[%s] [%s] %s", l.prefix, level, msg)
		return
	}
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.prefix, config.LogColorReset,
		levelColor, level, config.LogColorReset,
		msg,
	)
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *Logger {
	l, _ := New("DISCARD", "", io.Discard)
	return l
}

// Infof is a convenience wrapper formatting its arguments like fmt.Sprintf.
func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}
