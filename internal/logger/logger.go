// Package logger provides the leveled diagnostics logger shared by the CLI
// and the audit walk. Output goes to stderr so it never mixes with the report.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

//nolint:gochecknoglobals // Process-wide logger
var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return l
}

// Init sets the log level. Unknown levels fall back to info.
func Init(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	log.SetLevel(lvl)
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// ValidLevel reports whether level names a logrus level.
func ValidLevel(level string) bool {
	_, err := logrus.ParseLevel(level)

	return err == nil
}

// Debugf logs at debug level.
func Debugf(format string, args ...any) { log.Debugf(format, args...) }

// Warnf logs at warn level. Recoverable audit failures go through here.
func Warnf(format string, args ...any) { log.Warnf(format, args...) }

// Error logs at error level.
func Error(args ...any) { log.Error(args...) }
