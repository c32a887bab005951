// SPDX-License-Identifier: MIT
// Package logging builds the structured zap loggers used by the wgraph CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level"`

	// Format is the output format (json, console)
	Format string `yaml:"format"`

	// Output is the output destination (stdout, stderr, file path)
	Output string `yaml:"output"`

	// Development enables development mode
	Development bool `yaml:"development"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// New builds a logger from cfg. An unknown level falls back to info.
//
// The returned close func syncs the logger and releases the output file
// when Output names one; callers run it once they are done logging.
func New(cfg Config) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}
	ws, closeOutput, err := zap.Open(output)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", output, err)
	}

	core := zapcore.NewCore(encoder, ws, level)
	var logger *zap.Logger
	if cfg.Development {
		logger = zap.New(core, zap.Development(), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	} else {
		logger = zap.New(core, zap.AddCaller())
	}

	return logger, func() {
		_ = logger.Sync()
		closeOutput()
	}, nil
}

// Nop returns a logger that discards everything; handy in tests.
func Nop() *zap.Logger { return zap.NewNop() }
