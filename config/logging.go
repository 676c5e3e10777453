package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-inspector/log"
)

const defaultLoggingLevel = zapcore.WarnLevel

// LoggerConfig holds the logging level for each component.
type LoggerConfig struct {
	Encoder        log.Encoder `mapstructure:"log-encoder"`
	AppLoggerLevel string      `mapstructure:"app"`
	// BridgeLoggerLevel is used for the bridge multiplexer.
	BridgeLoggerLevel    string `mapstructure:"bridge"`
	InspectorLoggerLevel string `mapstructure:"inspector"`
	MetricsLoggerLevel   string `mapstructure:"metrics"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:              log.ConsoleEncoder,
		AppLoggerLevel:       defaultLoggingLevel.String(),
		BridgeLoggerLevel:    defaultLoggingLevel.String(),
		InspectorLoggerLevel: defaultLoggingLevel.String(),
		MetricsLoggerLevel:   defaultLoggingLevel.String(),
	}
}

// Loggers are the named loggers built from a LoggerConfig.
type Loggers struct {
	App       *zap.Logger
	Bridge    *zap.Logger
	Inspector *zap.Logger
	Metrics   *zap.Logger
}

// Build creates a named logger for every component.
func (c LoggerConfig) Build() (*Loggers, error) {
	var (
		loggers Loggers
		err     error
	)
	for _, l := range []struct {
		dst   **zap.Logger
		name  string
		level string
	}{
		{&loggers.App, "app", c.AppLoggerLevel},
		{&loggers.Bridge, "bridge", c.BridgeLoggerLevel},
		{&loggers.Inspector, "inspector", c.InspectorLoggerLevel},
		{&loggers.Metrics, "metrics", c.MetricsLoggerLevel},
	} {
		*l.dst, err = log.New(l.name, l.level, c.Encoder)
		if err != nil {
			return nil, err
		}
	}
	return &loggers, nil
}
