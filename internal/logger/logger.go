package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.SugaredLogger

// InitLogger initializes the global logger for production (JSON output,
// level taken from LOG_LEVEL when set)
func InitLogger() {
	config := zap.NewProductionConfig()

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			config.Level = zap.NewAtomicLevelAt(parsed)
		}
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	// Use SugaredLogger for easier key-value logging
	Log = logger.Sugar()
}

// InitLoggerDev initializes logger in development mode (more readable output)
func InitLoggerDev() {
	config := zap.NewDevelopmentConfig()

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	Log = logger.Sugar()
}

// Sync flushes buffered logs
func Sync() {
	if Log != nil {
		Log.Sync()
	}
}
