package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the shared logrus configuration used across the CLI.
// Services stay silent and return errors; commands and the storage
// bootstrap log through this.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if os.Getenv("MYPACE_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}
