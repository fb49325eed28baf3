// Package log constructs the logrus entry shared across the CLI.
package log

import (
	"github.com/sirupsen/logrus"
)

// New returns the root log entry. The version is attached as a field so
// every log line identifies the build that produced it.
func New(version string) *logrus.Entry {
	logE := logrus.NewEntry(logrus.New())
	return logE.WithFields(logrus.Fields{
		"program": "pyright-pretty",
		"version": version,
	})
}

// SetLevel applies a log level by name. An empty name keeps the default.
// An unparsable name is reported on the entry itself rather than failing
// the command.
func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logE.WithField("log_level", level).WithError(err).Error("the log level is invalid")
		return
	}
	logE.Logger.Level = lvl
}

// SetVerbosity raises the log level from the default according to the
// flags: --debug wins, then -q, then each -v steps warn -> info -> debug.
func SetVerbosity(debug bool, quiet bool, verbose int, logE *logrus.Entry) {
	switch {
	case debug:
		logE.Logger.Level = logrus.DebugLevel
	case quiet:
		logE.Logger.Level = logrus.ErrorLevel
	case verbose == 1:
		logE.Logger.Level = logrus.InfoLevel
	case verbose > 1:
		logE.Logger.Level = logrus.DebugLevel
	}
}
