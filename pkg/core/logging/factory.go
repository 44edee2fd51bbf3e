// ============================================================================
// roboarena - Robot Control Language Arena
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from config
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	mdwlog "github.com/msto63/roboarena/foundation/core/log"
	"github.com/msto63/roboarena/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format
	Format string // "json" or "text" (default: text)

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs (besides Output)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// FromConfig derives a logger configuration from the application config
func FromConfig(cfg *config.Config) LoggerConfig {
	return LoggerConfig{
		Name:   cfg.General.Name,
		Level:  cfg.General.LogLevel,
		Format: cfg.General.LogFormat,
	}
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format := mdwlog.FormatText
	if cfg.Format == "json" {
		format = mdwlog.FormatJSON
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// parseLevel converts a string level to mdwlog.Level
func parseLevel(level string) mdwlog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return mdwlog.LevelTrace
	case "debug":
		return mdwlog.LevelDebug
	case "info":
		return mdwlog.LevelInfo
	case "warn", "warning":
		return mdwlog.LevelWarn
	case "error":
		return mdwlog.LevelError
	case "fatal":
		return mdwlog.LevelFatal
	default:
		return mdwlog.LevelInfo
	}
}
