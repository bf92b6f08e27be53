package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.SugaredLogger

// Init builds the global structured logger. Production gets sampled JSON at
// info level; everything else gets development defaults, still JSON-encoded.
func Init(appEnv string) error {
	var config zap.Config

	if appEnv == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	globalLogger = logger.Sugar()
	return nil
}

// L returns the global logger, falling back to production defaults when Init
// was never called (tests, tools).
func L() *zap.SugaredLogger {
	if globalLogger == nil {
		logger, _ := zap.NewProduction()
		globalLogger = logger.Sugar()
	}
	return globalLogger
}

// Sync flushes buffered log entries.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}

func Info(msg string, keysAndValues ...any)  { L().Infow(msg, keysAndValues...) }
func Warn(msg string, keysAndValues ...any)  { L().Warnw(msg, keysAndValues...) }
func Error(msg string, keysAndValues ...any) { L().Errorw(msg, keysAndValues...) }
func Fatal(msg string, keysAndValues ...any) { L().Fatalw(msg, keysAndValues...) }
