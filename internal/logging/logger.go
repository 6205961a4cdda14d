// Package logging builds the zap logger used by the CLI.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config defines logger configuration.
type Config struct {
	Level       string `envconfig:"LEVEL" default:"warn"` // "debug", "info", "warn", "error"
	Development bool   `envconfig:"DEV" default:"false"`
}

// DefaultConfig returns the CLI logger configuration: warnings and above, JSON.
func DefaultConfig() Config {
	return Config{
		Level:       "warn",
		Development: false,
	}
}

// Validate checks that Level is a known zap level.
func (c Config) Validate() error {
	_, err := parseLevel(c.Level)

	return err
}

// New creates a logger writing to w. Results go to stdout, so the CLI
// passes stderr here.
func New(cfg Config, w io.Writer) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		encoder(cfg.Development),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	return zap.New(core, opts...), nil
}

// NewOrNop returns New's logger, or a no-op logger when cfg is invalid.
func NewOrNop(cfg Config, w io.Writer) *zap.Logger {
	logger, err := New(cfg, w)
	if err != nil {
		// Fallback to no-op logger
		return zap.NewNop()
	}

	return logger
}

// parseLevel converts string level to zapcore.Level.
func parseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, err
	}

	return l, nil
}

// encoder returns a console encoder in development, JSON otherwise.
func encoder(development bool) zapcore.Encoder {
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg)
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapcore.NewJSONEncoder(cfg)
}
