// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Setup returns a logger writing to out at level. format is "text" (the
// default) or "json".
func Setup(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl := logrus.InfoLevel
	if level != "" {
		var err error
		lvl, err = logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}

	var formatter logrus.Formatter
	switch strings.ToLower(format) {
	case "", "text":
		formatter = &logrus.TextFormatter{
			DisableTimestamp: true,
		}
	case "json":
		formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		}
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(formatter)
	logger.SetLevel(lvl)
	return logger, nil
}

// Timing logs how long a step took when the returned func is called.
func Timing(log logrus.FieldLogger, step string) func() {
	start := time.Now()
	return func() {
		log.WithFields(logrus.Fields{
			"step":    step,
			"elapsed": time.Since(start).Milliseconds(),
		}).Debug("step finished")
	}
}
