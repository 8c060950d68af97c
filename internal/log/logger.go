package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a configured logrus logger. Logs go to stderr so that
// command results on stdout stay machine-consumable.
func NewLogger(level string, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	setFormatter(logger, format)
	setLevel(logger, level)
	return logger
}

// Configure sets output, format, and level on an existing logger.
func Configure(logger *logrus.Logger, out io.Writer, level string, format string) {
	if out != nil {
		logger.SetOutput(out)
	}
	setFormatter(logger, format)
	setLevel(logger, level)
}

func setFormatter(logger *logrus.Logger, format string) {
	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		})
	}
}

func setLevel(logger *logrus.Logger, level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
}
