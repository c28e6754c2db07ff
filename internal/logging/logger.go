// Package logging builds the zap logger used for add_days diagnostics.
// Standard output carries data only, so every logger writes to the error
// stream unless a log file is configured.
package logging

import (
	"fmt"
	"io"
	"strings"

	"adddays/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names the part of the program a log line comes from.
type Category string

const (
	CategoryBoot   Category = "boot"   // Flag, config and logger setup
	CategoryFilter Category = "filter" // Line loop
)

// New builds a logger from cfg writing to stderr, or to cfg.File when set.
// verbose forces debug level. Each logger is tagged with a fresh run_id so
// lines from one invocation can be grouped when several runs share a file.
// The returned cleanup func closes the log file, if any.
func New(cfg config.LoggingConfig, verbose bool, stderr io.Writer) (*zap.Logger, func(), error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	opts := []zap.Option{zap.ErrorOutput(zapcore.AddSync(stderr))}
	switch cfg.Format {
	case "", "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
		opts = append(opts, zap.AddCaller())
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	sink := zapcore.AddSync(stderr)
	cleanup := func() {}
	if cfg.File != "" {
		ws, closeFile, err := zap.Open(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		sink, cleanup = ws, closeFile
	}

	core := zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(level))
	logger := zap.New(core, opts...).With(zap.String("run_id", uuid.NewString()))
	return logger, cleanup, nil
}

// For returns a child logger tagged with the category.
func For(logger *zap.Logger, category Category) *zap.Logger {
	return logger.With(zap.String("component", string(category)))
}

func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "":
		return zapcore.WarnLevel, nil
	case "warning":
		return zapcore.WarnLevel, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
