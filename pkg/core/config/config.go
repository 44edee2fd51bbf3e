// ============================================================================
// roboarena - Robot Control Language Arena
// ============================================================================
//
// Package:     config
// Description: TOML configuration with defaults and environment lookup
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	mdwerror "github.com/msto63/roboarena/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "ROBOARENA_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Parser  ParserConfig  `toml:"parser"`
	Match   MatchConfig   `toml:"match"`
	Store   StoreConfig   `toml:"store"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	DataDir   string `toml:"data_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// ParserConfig holds RCL engine settings
type ParserConfig struct {
	MaxSourceBytes int `toml:"max_source_bytes"`
	CacheSize      int `toml:"cache_size"`
}

// MatchConfig holds match driver settings
type MatchConfig struct {
	MaxTicks      int      `toml:"max_ticks"`
	TickDelay     Duration `toml:"tick_delay"`
	ActionTimeout Duration `toml:"action_timeout"`
	Scenario      string   `toml:"scenario"`
	Seed          int64    `toml:"seed"`
}

// StoreConfig holds match history settings
type StoreConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{Store: StoreConfig{Enabled: true}}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.Newf("config file not found: %s", path).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Load")
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from ROBOARENA_CONFIG or a default
// location, falling back to Default when no file exists.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path != "" {
		return Load(path)
	}

	defaultPaths := []string{
		"./roboarena.toml",
		"./configs/roboarena.toml",
		filepath.Join(os.Getenv("HOME"), ".config/roboarena/config.toml"),
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "roboarena"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Parser
	if c.Parser.MaxSourceBytes == 0 {
		c.Parser.MaxSourceBytes = 64 * 1024
	}
	if c.Parser.CacheSize == 0 {
		c.Parser.CacheSize = 128
	}

	// Match
	if c.Match.MaxTicks == 0 {
		c.Match.MaxTicks = 500
	}
	if c.Match.TickDelay.Duration == 0 {
		c.Match.TickDelay.Duration = 100 * time.Millisecond
	}
	if c.Match.ActionTimeout.Duration == 0 {
		c.Match.ActionTimeout.Duration = 250 * time.Millisecond
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.Store.Path = os.ExpandEnv(c.Store.Path)
	c.Match.Scenario = os.ExpandEnv(c.Match.Scenario)
}

// Validate rejects values the application cannot run with
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}) error {
		return mdwerror.Newf("invalid configuration value for %s: %v", field, value).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("field", field)
	}

	if c.Parser.MaxSourceBytes < 0 {
		return invalid("parser.max_source_bytes", c.Parser.MaxSourceBytes)
	}
	if c.Match.MaxTicks < 0 {
		return invalid("match.max_ticks", c.Match.MaxTicks)
	}
	if c.Match.TickDelay.Duration < 0 {
		return invalid("match.tick_delay", c.Match.TickDelay)
	}
	if c.Match.ActionTimeout.Duration < 0 {
		return invalid("match.action_timeout", c.Match.ActionTimeout)
	}
	switch c.General.LogFormat {
	case "text", "json":
	default:
		return invalid("general.log_format", c.General.LogFormat)
	}
	return nil
}

// StorePath returns the history database path
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return filepath.Join(c.General.DataDir, "history.db")
}
