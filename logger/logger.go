package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global logger. It is a no-op logger until InitLogger runs, so
// packages can log safely from tests.
var Log = zap.NewNop()

// InitLogger builds the global logger. mode "release" selects the JSON
// production encoder; anything else the colored development console.
func InitLogger(mode string) error {
	var config zap.Config
	if mode == "release" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := config.Build()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

func Info(msg string, fields ...zapcore.Field) {
	Log.Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	Log.Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	Log.Debug(msg, fields...)
}

// With creates a child logger carrying the given fields.
func With(fields ...zapcore.Field) *zap.Logger {
	return Log.With(fields...)
}

// Sync flushes buffered entries.
func Sync() error {
	return Log.Sync()
}
