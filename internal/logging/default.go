package logging

import (
	"github.com/sirupsen/logrus"
)

// defaultLogger is the process-wide logrus logger used before the container
// has wired per-package loggers from configuration.
var defaultLogger = logrus.New()

// GetLogger returns the shared logrus logger.
func GetLogger() *logrus.Logger {
	return defaultLogger
}

// SetAllLogLevels applies the given level to the shared logger and to the
// logrus standard logger, so early log lines respect LOG_LEVEL before the
// configuration layer runs. Invalid levels are ignored.
func SetAllLogLevels(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	defaultLogger.SetLevel(parsed)
	logrus.SetLevel(parsed)
}
