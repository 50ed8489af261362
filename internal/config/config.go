// Package config loads unitconv settings from defaults, an optional YAML
// file and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/raphaelgruber/unitconv/internal/units"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// Starting units for convert, batch and the TUI
	From units.Unit
	To   units.Unit

	// Strict disables the identity and "0.0" fallbacks on the CLI
	Strict bool

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// fileConfig mirrors the YAML file layout. Empty fields keep the default.
type fileConfig struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Strict   *bool  `yaml:"strict"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		From:     units.Centimeters,
		To:       units.Meters,
		LogFile:  filepath.Join(os.TempDir(), "unitconv.log"),
		LogLevel: slog.LevelInfo,
	}
}

// DefaultPath is where Load looks for a config file when none is given.
func DefaultPath() string {
	if p := os.Getenv("UNITCONV_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "unitconv", "config.yaml")
}

// Load builds the configuration: defaults, then the YAML file at path (a
// missing file is not an error), then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := cfg.applyYAML(data); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyYAML(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	if fc.From != "" {
		u, err := units.ParseUnit(fc.From)
		if err != nil {
			return fmt.Errorf("from: %w", err)
		}
		c.From = u
	}
	if fc.To != "" {
		u, err := units.ParseUnit(fc.To)
		if err != nil {
			return fmt.Errorf("to: %w", err)
		}
		c.To = u
	}
	if fc.Strict != nil {
		c.Strict = *fc.Strict
	}
	if fc.LogFile != "" {
		c.LogFile = fc.LogFile
	}
	if fc.LogLevel != "" {
		c.LogLevel = parseLogLevel(fc.LogLevel)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("UNITCONV_FROM"); v != "" {
		u, err := units.ParseUnit(v)
		if err != nil {
			return fmt.Errorf("UNITCONV_FROM: %w", err)
		}
		c.From = u
	}
	if v := os.Getenv("UNITCONV_TO"); v != "" {
		u, err := units.ParseUnit(v)
		if err != nil {
			return fmt.Errorf("UNITCONV_TO: %w", err)
		}
		c.To = u
	}
	if v := os.Getenv("UNITCONV_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("UNITCONV_STRICT: %w", err)
		}
		c.Strict = strict
	}
	c.LogFile = getEnv("UNITCONV_LOG_FILE", c.LogFile)
	if v := os.Getenv("UNITCONV_LOG_LEVEL"); v != "" {
		c.LogLevel = parseLogLevel(v)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
