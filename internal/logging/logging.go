// Package logging builds the zap loggers used by the benchmark driver.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger flavour.
type Options struct {
	// Debug lowers the level to debug.
	Debug bool
	// Format is "json" or "console". Empty means json.
	Format string
}

// New returns a logger writing to stderr.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch opts.Format {
	case "", "json":
	case "console":
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, fmt.Errorf("logging: unsupported format %q (expected json|console)", opts.Format)
	}

	if opts.Debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.Development = true
	}

	return cfg.Build()
}

// Nop returns a logger that drops everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
