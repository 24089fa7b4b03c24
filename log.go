package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// logEnv names the environment variable holding the trace level.
const logEnv = "LED_LOG"

var logger = logrus.New()

func init() {
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// setupLogging applies the log level and destination. The level from
// the environment wins over level. The returned closer releases the log
// file, if one was opened.
func setupLogging(level, path string) (io.Closer, error) {
	if env := os.Getenv(logEnv); env != "" {
		level = env
	}
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(lvl)
	}
	if path == "" {
		return io.NopCloser(nil), nil
	}
	fp, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(fp)
	return fp, nil
}
