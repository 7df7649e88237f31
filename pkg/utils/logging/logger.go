package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogsDir = "logs"

type options struct {
	logsDir      string
	consoleLevel zapcore.Level
	fileLevel    zapcore.Level
	console      zapcore.WriteSyncer
}

// Option customises InitLogger
type Option func(*options)

// WithLogsDir writes the log file into dir instead of ./logs
func WithLogsDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.logsDir = dir
		}
	}
}

// WithConsoleLevel sets the minimum level printed to the console
func WithConsoleLevel(level zapcore.Level) Option {
	return func(o *options) {
		o.consoleLevel = level
	}
}

// WithConsole replaces stdout as the console sink
func WithConsole(ws zapcore.WriteSyncer) Option {
	return func(o *options) {
		if ws != nil {
			o.console = ws
		}
	}
}

// InitLogger initializes a zap logger with console and file outputs
// env is used to prefix the log file name
func InitLogger(env string, opts ...Option) (*zap.Logger, error) {
	o := &options{
		logsDir:      defaultLogsDir,
		consoleLevel: zapcore.InfoLevel,
		fileLevel:    zapcore.DebugLevel,
		console:      zapcore.AddSync(os.Stdout),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := os.MkdirAll(o.logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFile, err := os.OpenFile(LogFilePath(o.logsDir, env, time.Now()), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	// Console is human-readable, the file is JSON for later digging
	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	fileEncoderConfig := zap.NewProductionEncoderConfig()
	fileEncoderConfig.TimeKey = "timestamp"
	fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig), o.console, o.consoleLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(logFile), o.fileLevel),
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("env", env))

	return logger, nil
}

// LogFilePath returns the log file used for a run started at ts
func LogFilePath(dir, env string, ts time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.log", env, ts.Format("2006-01-02_15-04-05")))
}
