package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ServiceName is the service field of every entry the server writes.
const ServiceName = "fuel-server"

// SetupLogging returns a JSON logger at info level whose entries carry service.
// Callers raise or lower the level once the configuration is loaded.
func SetupLogging(service string) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Hooks: make(logrus.LevelHooks),
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
	}
	logger.AddHook(serviceHook{service: service})

	return &logger
}

type serviceHook struct {
	service string
}

func (h serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h serviceHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["service"]; !ok {
		entry.Data["service"] = h.service
	}
	return nil
}
