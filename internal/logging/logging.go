package logging

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

const Service = "storefront"

// New builds the process logger. format is "json" or "text".
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)

	if format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg:  "message",
				logrus.FieldKeyTime: "timestamp",
			},
		})
	}

	return logger, nil
}

// Step logs the outcome of one unit of work with its duration.
func Step(log logrus.FieldLogger, step string, started time.Time, err error) {
	entry := log.WithFields(logrus.Fields{
		"step":        step,
		"duration_ms": time.Since(started).Milliseconds(),
	})

	if err != nil {
		entry.WithField("status", "error").WithError(err).Warn(step + " failed")
		return
	}

	entry.WithField("status", "ok").Info(step + " done")
}
