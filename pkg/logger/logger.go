package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with the fields this service logs most often.
type Logger struct {
	*logrus.Logger
}

// New creates a JSON logger writing to stdout at the given level (info on parse failure).
func New(level string) *Logger {
	return NewWithOutput(level, os.Stdout)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(level string, out io.Writer) *Logger {
	log := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	log.SetOutput(out)

	return &Logger{Logger: log}
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *Logger {
	return NewWithOutput("panic", io.Discard)
}

// WithComponent tags entries with the emitting component.
func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.Logger.WithField("component", component)
}

// WithStaff tags entries with the staff id and the acting user.
func (l *Logger) WithStaff(staffID, actor string) *logrus.Entry {
	return l.Logger.WithFields(logrus.Fields{
		"staff_id": staffID,
		"actor":    actor,
	})
}
