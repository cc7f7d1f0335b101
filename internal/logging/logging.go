// Package logging builds the zap loggers used by selectorbench.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

var ErrUnknownLevel = fmt.Errorf("unknown log level")

func (l LogLevel) zapLevel() (zapcore.Level, error) {
	switch l {
	case LogInfo, "":
		return zap.InfoLevel, nil
	case LogWarn:
		return zap.WarnLevel, nil
	case LogError:
		return zap.ErrorLevel, nil
	case LogDebug:
		return zap.DebugLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, string(l))
	}
}

// New returns a production JSON logger, or a development console logger when dev is set.
func New(level LogLevel, dev bool) (*zap.Logger, error) {
	lvl, err := level.zapLevel()
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// NewTestLogger writes debug-level console output to stdout.
func NewTestLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

// Sync flushes the logger, logging (not returning) a failure.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}
