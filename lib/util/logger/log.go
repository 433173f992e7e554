package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is the structured payload attached to a log entry.
type Fields = logrus.Fields

var (
	log  *Logger
	once sync.Once
)

type Logger struct {
	*logrus.Logger
}

// Entry is a log entry carrying structured fields. Warnings and errors
// honour WARNFAIL_OVERRIDES the same way the Logger does.
type Entry struct {
	entry *logrus.Entry
}

func (l *Logger) Warn(args ...interface{}) {
	warnFatal(args...)
	l.Logger.Warn(args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	l.Logger.Warnf(format, args...)
}

func (l *Logger) Error(args ...interface{}) {
	warnFatal(args...)
	l.Logger.Error(args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	l.Logger.Errorf(format, args...)
}

func (l *Logger) WithField(key string, value interface{}) *Entry {
	return &Entry{l.Logger.WithField(key, value)}
}

func (l *Logger) WithFields(fields Fields) *Entry {
	return &Entry{l.Logger.WithFields(fields)}
}

func (l *Logger) WithError(err error) *Entry {
	return &Entry{l.Logger.WithError(err)}
}

func (e *Entry) WithField(key string, value interface{}) *Entry {
	return &Entry{e.entry.WithField(key, value)}
}

func (e *Entry) WithFields(fields Fields) *Entry {
	return &Entry{e.entry.WithFields(fields)}
}

func (e *Entry) WithError(err error) *Entry {
	return &Entry{e.entry.WithError(err)}
}

func (e *Entry) Debug(args ...interface{}) {
	e.entry.Debug(args...)
}

func (e *Entry) Debugf(format string, args ...interface{}) {
	e.entry.Debugf(format, args...)
}

func (e *Entry) Info(args ...interface{}) {
	e.entry.Info(args...)
}

func (e *Entry) Infof(format string, args ...interface{}) {
	e.entry.Infof(format, args...)
}

func (e *Entry) Warn(args ...interface{}) {
	warnFatal(args...)
	e.entry.Warn(args...)
}

func (e *Entry) Warnf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	e.entry.Warnf(format, args...)
}

func (e *Entry) Error(args ...interface{}) {
	warnFatal(args...)
	e.entry.Error(args...)
}

func (e *Entry) Errorf(format string, args ...interface{}) {
	warnFatalf(format, args...)
	e.entry.Errorf(format, args...)
}

func warnFatal(args ...interface{}) {
	if failFast != "" {
		log.Fatal(args...)
	}
}

func warnFatalf(format string, args ...interface{}) {
	if failFast != "" {
		log.Fatalf(format, args...)
	}
}

var failFast string

// InitializeLogger sets up the shared logger. Logging is discarded unless
// DEBUG_OVERRIDES names a level.
func InitializeLogger() {
	once.Do(func() {
		log = &Logger{}
		log.Logger = logrus.New()
		// We do not want to log by default
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		if logLevel := os.Getenv("DEBUG_OVERRIDES"); logLevel != "" {
			failFast = os.Getenv("WARNFAIL_OVERRIDES")
			if failFast != "" {
				logLevel = "debug"
			}
			SetLevel(logLevel)
			log.WithField("level", log.GetLevel()).Debug("Logging enabled.")
		}
	})
}

// SetLevel enables output to stderr at the named level. An empty or
// unrecognised name selects debug.
func SetLevel(level string) {
	l := GetLogger()
	l.SetOutput(os.Stderr)
	switch strings.ToLower(level) {
	case "warn":
		l.Logger.SetLevel(logrus.WarnLevel)
	case "error":
		l.Logger.SetLevel(logrus.ErrorLevel)
	case "info":
		l.Logger.SetLevel(logrus.InfoLevel)
	default:
		l.Logger.SetLevel(logrus.DebugLevel)
	}
}

// GetLogger returns the initialized Logger
func GetLogger() *Logger {
	if log == nil {
		InitializeLogger()
	}
	return log
}

func init() {
	InitializeLogger()
}
