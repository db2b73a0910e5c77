package worker

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
)

func hclogLevel(level logrus.Level) hclog.Level {
	switch level {
	case logrus.TraceLevel:
		return hclog.Trace
	case logrus.DebugLevel:
		return hclog.Debug
	case logrus.InfoLevel:
		return hclog.Info
	case logrus.WarnLevel:
		return hclog.Warn
	default:
		return hclog.Error
	}
}

// NewHostLogger builds the logger handed to go-plugin clients. Everything
// it prints, worker stderr included, ends up in logrus at debug level.
// The returned closer must be called once the clients are gone.
func NewHostLogger(entry *logrus.Entry) (hclog.Logger, io.Closer) {
	output := entry.WithField("worker logs", true).WriterLevel(logrus.DebugLevel)

	logger := hclog.New(&hclog.LoggerOptions{
		Name:        "worker",
		Level:       hclogLevel(entry.Logger.GetLevel()),
		Output:      output,
		DisableTime: true,
	})

	return logger, output
}

// NewServeLogger is go-plugin's own logger inside a worker process. It
// writes JSON to stderr, which the host knows how to parse.
func NewServeLogger(entry *logrus.Entry) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "worker",
		Level:      hclogLevel(entry.Logger.GetLevel()),
		Output:     os.Stderr,
		JSONFormat: true,
	})
}
