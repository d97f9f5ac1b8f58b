package logging

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

func newFormatter() logrus.Formatter {
	return &logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}
}

// SetupLogging returns the JSON stdout logger used everywhere. The logrus standard logger gets the same format so
// messages logged before configuration is complete look alike.
func SetupLogging(level logrus.Level) *logrus.Logger {
	logrus.SetFormatter(newFormatter())
	logrus.SetLevel(level)

	return &logrus.Logger{
		Formatter: newFormatter(),
		Out:       os.Stdout,
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
		ExitFunc:  os.Exit,
	}
}
