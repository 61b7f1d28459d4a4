package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

func CreateLogger(serviceName string) logrus.FieldLogger {
	l := logrus.StandardLogger()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(getLogLevel())
	if err != nil {
		l.Fatalf("Unable to parse log level from environment.")
	}
	l.SetLevel(level)

	return l.WithField("service", serviceName)
}

func getLogLevel() string {
	if val, ok := os.LookupEnv("LOG_LEVEL"); ok {
		return val
	}
	return logrus.InfoLevel.String()
}
