// Package logging builds the structured loggers used across socnet.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger represents a logger instance
type Logger = *logrus.Logger

// Fields represents structured logging fields
type Fields = logrus.Fields

// Log levels
const (
	DebugLevel = logrus.DebugLevel
	InfoLevel  = logrus.InfoLevel
	WarnLevel  = logrus.WarnLevel
	ErrorLevel = logrus.ErrorLevel
)

// DefaultLevel is used when no level (or an unknown one) is configured.
const DefaultLevel = "info"

// ParseLevel maps a level name onto a logrus level, falling back to info.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return InfoLevel
	}
	return lvl
}

// New creates a JSON logger writing to stderr at the given level.
func New(level string) *logrus.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with a caller-chosen destination.
func NewWithWriter(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// NewWithComponent creates a logger entry tagged with a component field
func NewWithComponent(level, component string) *logrus.Entry {
	return New(level).WithField("component", component)
}

// Discard returns a logger that drops everything; it is the default for
// library code that was not handed a logger.
func Discard() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
