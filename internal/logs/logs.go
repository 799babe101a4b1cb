package logs

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logger is created once and only reconfigured through its setters, which are
// guarded by the logger's own lock.
var logger = log.New(os.Stderr)

// InitLog configures the console logger. Unknown levels fall back to info.
func InitLog(appName, level string) {
	logger.SetPrefix(appName)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	SetLevel(level)
}

// SetLevel changes the level of the running logger. Unknown levels fall back
// to info. It is safe to call while other goroutines log.
func SetLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	if err != nil {
		logger.Warnf("unknown log level %q, using info", level)
	}
}

func Debug(format string, values ...any) {
	logger.Debugf(format, values...)
}

func Info(format string, values ...any) {
	logger.Infof(format, values...)
}

func Warn(format string, values ...any) {
	logger.Warnf(format, values...)
}

func Error(format string, values ...any) {
	logger.Errorf(format, values...)
}

func Fatal(format string, values ...any) {
	logger.Fatalf(format, values...)
}

// PrintfLogger forwards printf-style calls to the package logger. It satisfies
// the app service's Logger interface.
type PrintfLogger struct{}

// Printf returns the adapter for code that takes a printf-style logger.
func Printf() PrintfLogger { return PrintfLogger{} }

func (PrintfLogger) Debug(format string, v ...interface{}) { Debug(format, v...) }
func (PrintfLogger) Info(format string, v ...interface{})  { Info(format, v...) }
func (PrintfLogger) Warn(format string, v ...interface{})  { Warn(format, v...) }
func (PrintfLogger) Error(format string, v ...interface{}) { Error(format, v...) }
