// ABOUTME: Logrus-backed logger implementation
// ABOUTME: Adapts a logrus.Logger to the interfaces.Logger contract used by the library

package logrus

import (
	sirupsen "github.com/sirupsen/logrus"
)

// LogrusLogger implements the interfaces.Logger contract on top of
// logrus.
type LogrusLogger struct {
	logger *sirupsen.Logger
}

// NewLogrusLogger creates a logger with a fresh logrus instance at the
// given level.
func NewLogrusLogger(level sirupsen.Level) *LogrusLogger {
	l := sirupsen.New()
	l.SetLevel(level)
	return &LogrusLogger{logger: l}
}

// NewWithLogger wraps an existing logrus logger, so the library shares
// the application's formatter, hooks and output.
func NewWithLogger(l *sirupsen.Logger) *LogrusLogger {
	if l == nil {
		l = sirupsen.StandardLogger()
	}
	return &LogrusLogger{logger: l}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(sirupsen.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(sirupsen.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(sirupsen.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(sirupsen.Fields(fields)).Error(msg)
}
