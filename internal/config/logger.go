package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger from logging.level and
// logging.format. Production JSON is the default; "console" switches to
// the development encoder for local runs.
func NewLogger(v *viper.Viper) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(v.GetString("logging.level"))
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}

	var cfg zap.Config
	switch format := v.GetString("logging.format"); format {
	case "json", "":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("logging.format %q: must be \"json\" or \"console\"", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}
