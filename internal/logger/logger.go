package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger. format "json" gives the production encoder, anything
// else the console one. Every entry carries the instance name.
func New(level, format, instance string) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.InitialFields = map[string]any{"instance": instance}

	log, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}
	return log, nil
}

// RedirectStdLog sends the standard library logger through log at info level.
// The returned func restores the previous output.
func RedirectStdLog(log *zap.Logger) func() {
	return zap.RedirectStdLog(log)
}
