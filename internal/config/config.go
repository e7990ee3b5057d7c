// Package config loads encyclopedia settings from a YAML file, a .env file
// and ENCYCLOPEDIA_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvDir      = "ENCYCLOPEDIA_DIR"
	EnvAddr     = "ENCYCLOPEDIA_ADDR"
	EnvLogLevel = "ENCYCLOPEDIA_LOG_LEVEL"
	EnvSanitize = "ENCYCLOPEDIA_SANITIZE"
	EnvReadOnly = "ENCYCLOPEDIA_READ_ONLY"
	EnvDB       = "ENCYCLOPEDIA_DB"
)

// Config holds all encyclopedia configuration.
type Config struct {
	// Dir is the wiki root holding the entries directory.
	Dir string `yaml:"dir"`
	// Addr is the listen address for the web server.
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	// Sanitize strips unsafe HTML from rendered entries.
	Sanitize bool `yaml:"sanitize"`
	ReadOnly bool `yaml:"read_only"`
	// DB is the SQLite file used by the roster tools.
	DB string `yaml:"db"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dir:      ".",
		Addr:     ":8000",
		LogLevel: "info",
		DB:       "students.db",
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
// The .env file in the working directory, if any, is loaded before
// environment overrides are applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// godotenv never overrides variables already set in the process.
	_ = godotenv.Load()

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ENCYCLOPEDIA_* variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvDir); v != "" {
		c.Dir = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvDB); v != "" {
		c.DB = v
	}
	if v := os.Getenv(EnvSanitize); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSanitize, err)
		}
		c.Sanitize = b
	}
	if v := os.Getenv(EnvReadOnly); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvReadOnly, err)
		}
		c.ReadOnly = b
	}
	return nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return errors.New("dir must not be empty")
	}
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}
