package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eugenenazirov/tasking-manager/internal/config"
)

// LogFileName is the file written inside the configured log directory.
const LogFileName = "tasking-manager.log"

// Options configures New.
type Options struct {
	Level zapcore.Level
	// Dir receives LogFileName when set. Empty logs to stderr only.
	Dir string
}

// OptionsFor derives logger options from a resolved configuration.
func OptionsFor(cfg config.Config) Options {
	return Options{Level: LevelFor(cfg.LogLevel), Dir: cfg.LogDir}
}

// LevelFor maps a severity rank onto the closest zap level.
func LevelFor(level config.LogLevel) zapcore.Level {
	switch {
	case level >= config.LevelCritical:
		return zapcore.DPanicLevel
	case level >= config.LevelError:
		return zapcore.ErrorLevel
	case level >= config.LevelWarning:
		return zapcore.WarnLevel
	case level >= config.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New creates a structured JSON logger writing to stderr and, when a
// directory is configured, to a log file inside it.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(opts.Level)
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false
	cfg.OutputPaths = []string{"stderr"}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		cfg.OutputPaths = append(cfg.OutputPaths, filepath.Join(opts.Dir, LogFileName))
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
