package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerConfig controls logger construction.
type LoggerConfig struct {
	Debug bool
}

// NewLogger creates a zap logger. Debug enables development encoding and
// debug-level output; otherwise a production JSON logger at info level is used.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	if cfg == nil {
		cfg = &LoggerConfig{}
	}

	if cfg.Debug {
		c := zap.NewDevelopmentConfig()
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return c.Build()
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return c.Build()
}
