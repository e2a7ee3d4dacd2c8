// Package logger provides the tagged, color-prefixed logger used across
// the service, layered over the standard library log package.
package logger

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger writes leveled, tagged log lines such as
// "[GENERATOR] [INFO] accepted maze after 3 attempts".
type Logger struct {
	tag   string
	color string
	out   *log.Logger
}

// New creates a Logger writing to w with the given tag and ANSI color.
func New(tag, color string, w io.Writer) (*Logger, error) {
	if tag == "" {
		return nil, errors.New("logger tag is empty")
	}
	return &Logger{
		tag:   tag,
		color: color,
		out:   log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.write("ERROR", msg)
}

func (l *Logger) write(level, msg string) {
	l.out.Printf("%s[%s]%s [%s] %s", l.color, l.tag, colorReset, level, msg)
}
