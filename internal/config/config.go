// Package config loads the basetypes command settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. BASETYPES_LOG_LEVEL.
const Prefix = "BASETYPES"

type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	// Precision is the number of significant digits printed for each
	// value; -1 prints the shortest exact representation.
	Precision int `envconfig:"PRECISION" default:"-1"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	if cfg.Precision < -1 {
		return nil, fmt.Errorf("config: precision %d must be -1 or greater", cfg.Precision)
	}
	return &cfg, nil
}

// Level returns LogLevel as a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
