package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file given with --config.
type Config struct {
	// MaxSteps bounds recurrence candidates per request. Zero keeps the
	// library default.
	MaxSteps int `yaml:"max_steps"`

	// MaxLookahead bounds how far past the reference a search may go,
	// written as a Go duration ("8760h"). Zero keeps the library default.
	MaxLookahead time.Duration `yaml:"max_lookahead"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// DisplayFormat is the strftime pattern for the local wall-clock column.
	DisplayFormat string `yaml:"display_format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "warn",
		DisplayFormat: "%a %Y-%m-%d %H:%M %Z",
	}
}

// LoadConfig reads path on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges that the library would otherwise clamp
// silently.
func (c Config) Validate() error {
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	if c.MaxLookahead < 0 {
		return fmt.Errorf("max_lookahead must not be negative, got %s", c.MaxLookahead)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
