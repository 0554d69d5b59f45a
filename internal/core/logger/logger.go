package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var globalLogger *zap.Logger

// FileOptions configures the rotated JSON log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Option customizes Init.
type Option func(*options)

type options struct {
	file *FileOptions
}

// WithFile also writes JSON logs to a rotated file. An empty path disables it.
func WithFile(file FileOptions) Option {
	return func(o *options) {
		if file.Path != "" {
			o.file = &file
		}
	}
}

// Init initializes the global logger.
// For "development" env, it produces pretty console logs.
// For "production" env, it produces JSON logs.
func Init(environment string, level string, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zapcore.ParseLevel(level)
	if err == nil {
		config.Level = zap.NewAtomicLevelAt(l)
	}

	var buildOpts []zap.Option
	if o.file != nil {
		fileCore := newFileCore(*o.file, config.Level)
		buildOpts = append(buildOpts, zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	logger, err := config.Build(buildOpts...)
	if err != nil {
		return err
	}

	globalLogger = logger
	return nil
}

func newFileCore(file FileOptions, level zap.AtomicLevel) zapcore.Core {
	writer := &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
		MaxAge:     file.MaxAgeDays,
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(writer), level)
}

// Get returns the global logger instance.
// If not initialized, it returns a no-op logger to prevent panics.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Sync flushes any buffered log entries.
func Sync() {
	if globalLogger != nil {
		globalLogger.Sync()
	}
}
