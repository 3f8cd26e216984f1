package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"user-processing-api/internal/config"
)

// New creates a logger configured from the application config. Handlers
// and services receive this instance instead of sharing a process-wide
// singleton, so tests can attach their own.
func New(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return log
}
