package configs

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide base logger. Components should take an entry
// from LogWithContext rather than logging through it directly.
var Logger = logrus.New()

// InitLogger configures Logger from cfg. A nil cfg leaves text output at
// info level, which is what tests get.
func InitLogger(cfg *Config) {
	Logger.SetOutput(os.Stdout)
	Logger.SetLevel(logrus.InfoLevel)
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg == nil {
		return
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		Logger.SetLevel(level)
	} else {
		Logger.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, using info")
	}

	if cfg.IsProduction() {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	if cfg.LogFile != "" {
		Logger.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}))
	}
}

// LogWithContext returns an entry tagged with the service and component.
func LogWithContext(service, component string) *logrus.Entry {
	return Logger.WithFields(logrus.Fields{
		"service":   service,
		"component": component,
	})
}
