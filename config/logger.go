package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Production bool   `mapstructure:"production"`
}

// NewLogger ...
func NewLogger(conf LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if conf.Level != "" {
		err := level.Set(conf.Level)
		if err != nil {
			panic(err)
		}
	}

	zapConf := zap.NewDevelopmentConfig()
	if conf.Production {
		zapConf = zap.NewProductionConfig()
	}
	zapConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
