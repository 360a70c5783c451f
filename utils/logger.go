package utils

import (
	"log"

	"yourclean/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// InitializeLogger builds the process-wide logger: JSON in production,
// colored console output in development. LOG_LEVEL overrides the default
// level for either mode.
func InitializeLogger() {
	var cfg zap.Config
	defaultLevel := zapcore.InfoLevel

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		defaultLevel = zapcore.DebugLevel
	}

	level, err := zapcore.ParseLevel(config.AppConfig.LogLevel)
	if err != nil {
		level = defaultLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// GetLogger retrieves the global logger, initializing it on first use.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
