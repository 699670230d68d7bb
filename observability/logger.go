// Package observability provides the optional structured-logging sink this
// module's Session can be wired into. The neuromotor package itself never
// reaches for a global logger — every Session takes a *zap.Logger at
// construction — but a caller embedding this library in a larger service
// can use Initialize to get the same console+rotating-file setup the
// humanoid lineage carries.
package observability

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how logs are written.
type Config struct {
	Level      zapcore.Level
	FilePath   string // empty disables the rotating file sink
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Console    bool
}

// DefaultConfig logs at Info to the console only, no file sink.
func DefaultConfig() Config {
	return Config{
		Level:      zapcore.InfoLevel,
		Console:    true,
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Initialize builds a logger from cfg and installs it as the package-level
// logger returned by GetLogger. It tees a console encoder and, when
// cfg.FilePath is set, a lumberjack-rotated file encoder, mirroring the
// teacher's internal/observability/logger.go.
func Initialize(cfg Config) (*zap.Logger, error) {
	var cores []zapcore.Core

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Console {
		consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), cfg.Level))
	}

	if cfg.FilePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		fileEncoder := zapcore.NewJSONEncoder(encoderCfg)
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(rotator), cfg.Level))
	}

	core := zapcore.NewTee(cores...)
	logger := zap.New(core)
	current.Store(logger)
	return logger, nil
}

// GetLogger returns the currently installed logger, or a no-op logger if
// Initialize has never been called.
func GetLogger() *zap.Logger {
	return current.Load()
}

// Sync flushes the currently installed logger's buffered entries.
func Sync() error {
	return current.Load().Sync()
}

// ResetForTest restores the no-op logger, for tests that call Initialize
// and want a clean slate afterward.
func ResetForTest() {
	current.Store(zap.NewNop())
}
