// Package logging builds the zap logger userdeck writes diagnostics to.
//
// The interactive browser owns the terminal, so its logs go to a file;
// headless commands may log to stderr. Subsystems log through named
// children of one root logger, one per Category.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"userdeck/internal/config"
)

// Category names a subsystem's logger.
type Category string

const (
	CategoryBoot   Category = "boot"   // startup, config resolution
	CategoryFetch  Category = "fetch"  // profile requests and failures
	CategoryUI     Category = "ui"     // browser state changes
	CategoryLaunch Category = "launch" // mailto:/tel: hand-off
)

// Options adjusts how New interprets a LoggingConfig.
type Options struct {
	// Verbose forces debug level regardless of the configured level.
	Verbose bool
	// Stderr ignores the configured file and writes to stderr.
	Stderr bool
}

// ParseLevel maps a config level name to a zap level. Unknown names fall
// back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds the root logger described by cfg.
func New(cfg config.LoggingConfig, opts Options) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	if opts.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.Sampling = nil
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Format == "text" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	output := "stderr"
	if cfg.File != "" && !opts.Stderr {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		output = cfg.File
	}
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Get returns the named child logger for a category. A nil root yields a
// no-op logger.
func Get(root *zap.Logger, category Category) *zap.Logger {
	if root == nil {
		return zap.NewNop()
	}
	return root.Named(string(category))
}
