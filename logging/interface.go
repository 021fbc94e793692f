package logging

import (
	"io"
	"log/slog"

	"github.com/runningwild/glop/glog"
)

type Logger = glog.Logger

// All package-level logging funnels through this logger so that Redirect and
// SetLoggingLevel affect every call site at once.
var defaultLogger Logger

func init() {
	defaultLogger = glog.New(&glog.Opts{
		Level: slog.LevelInfo,
	})
}

func DefaultLogger() Logger {
	return defaultLogger
}

func TraceLogger() Logger {
	return glog.Relevel(defaultLogger, glog.LevelTrace)
}

func DebugLogger() Logger {
	return glog.Relevel(defaultLogger, slog.LevelDebug)
}

func InfoLogger() Logger {
	return glog.Relevel(defaultLogger, slog.LevelInfo)
}

func WarnLogger() Logger {
	return glog.Relevel(defaultLogger, slog.LevelWarn)
}

func ErrorLogger() Logger {
	return glog.Relevel(defaultLogger, slog.LevelError)
}

func Log(msg string, args ...interface{}) {
	defaultLogger.Info(msg, args...)
}

func Trace(msg string, args ...interface{}) {
	defaultLogger.Trace(msg, args...)
}

func Debug(msg string, args ...interface{}) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...interface{}) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...interface{}) {
	defaultLogger.Error(msg, args...)
}

// Call this to redirect all logging output to the given io.Writer. A cleanup
// function that undoes the redirect is returned.
func Redirect(newOut io.Writer) func() {
	oldLogger := defaultLogger
	defaultLogger = glog.WithRedirect(oldLogger, newOut)
	return func() {
		defaultLogger = oldLogger
	}
}

// Tells the default logger to change its verbosity.
func SetLogLevel(lvl slog.Level) {
	defaultLogger = glog.Relevel(defaultLogger, lvl)
}

// Like SetLogLevel but returns a cleanup function that restores the previous
// verbosity.
func SetLoggingLevel(lvl slog.Level) func() {
	oldLogger := defaultLogger
	defaultLogger = glog.Relevel(defaultLogger, lvl)
	return func() {
		defaultLogger = oldLogger
	}
}
