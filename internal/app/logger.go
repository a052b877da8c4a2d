package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is stamped on every log entry.
const ServiceName = "teacher-booking-api"

// NewLogger builds a JSON logger for production and a colored console
// logger otherwise.
func NewLogger(env string) *zap.Logger {
	logger, err := loggerConfig(env).Build()
	if err != nil {
		panic("build logger: " + err.Error())
	}
	return logger
}

func loggerConfig(env string) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{"stdout"}
	cfg.InitialFields = map[string]any{"service": ServiceName, "env": env}
	return cfg
}
