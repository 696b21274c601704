package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"messageboard/config"
)

// InitLogger configures the standard logrus logger.
func InitLogger(cfg config.LogConfig) {
	logrus.SetOutput(os.Stdout)
	if cfg.File != "" {
		logFile, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file (%s), using stdout: %v", cfg.File, err)
		} else {
			logrus.SetOutput(logFile)
		}
	}

	if cfg.Format == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	logrus.Info("Logger initialized")
}
