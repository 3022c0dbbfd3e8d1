package core

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// LogLevel is the textual level used in configuration files and flags:
// "debug", "info", "warn", "error" or "fatal".
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelFatal LogLevel = "fatal"
)

func (l LogLevel) toCharm() (log.Level, error) {
	return log.ParseLevel(strings.ToLower(string(l)))
}

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			l := log.NewWithOptions(os.Stderr, log.Options{
				ReportCaller:    true,
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
				Prefix:          "Geometria 📐 ",
			})
			l.SetLevel(log.InfoLevel)
			singleton = &logger{l}
		})
	return singleton
}

// SetLogLevel changes the minimum level of the process-wide logger.
// Unknown levels are rejected and leave the current level untouched.
func SetLogLevel(level LogLevel) error {
	lvl, err := level.toCharm()
	if err != nil {
		return err
	}
	getLogger().SetLevel(lvl)
	return nil
}

// ValidateLogLevel reports whether level names a known level.
func ValidateLogLevel(level LogLevel) error {
	_, err := level.toCharm()
	return err
}

// SetLogOutput redirects the process-wide logger, e.g. into a buffer in tests.
func SetLogOutput(w io.Writer) {
	getLogger().SetOutput(w)
}

// LogWith writes a structured info record made of msg and key/value pairs.
func LogWith(msg string, keyvals ...interface{}) {
	l := getLogger()
	l.Helper()
	l.Info(msg, keyvals...)
}

func LogDebug(msg string, args ...interface{}) {
	l := getLogger()
	l.Helper()
	l.Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	l := getLogger()
	l.Helper()
	l.Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	l := getLogger()
	l.Helper()
	l.Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	l := getLogger()
	l.Helper()
	l.Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	l := getLogger()
	l.Helper()
	l.Fatalf(msg, args...)
}
