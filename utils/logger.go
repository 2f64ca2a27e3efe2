package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *zap.Logger

func InitLogger() {
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   "./logs/app.log",
		MaxSize:    50, // MB
		MaxBackups: 7,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	jsonEncoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewTee(
		zapcore.NewCore(jsonEncoder, fileWriter, zap.InfoLevel),
		zapcore.NewCore(jsonEncoder, zapcore.AddSync(os.Stdout), zap.InfoLevel),
	)
	Logger = zap.New(core, zap.AddCaller())
}

// Log never returns nil so callers don't have to guard against an
// uninitialized logger (e.g. in tests).
func Log() *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger
}
