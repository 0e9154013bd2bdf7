// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable pointing at the config file.
const EnvVar = "PADSCOPE_CONFIG"

// Config is the padscope configuration.
type Config struct {
	// RateHz is the acquisition tick rate in Hz.
	RateHz int `yaml:"rate_hz"`

	// Device is the joystick node to poll.
	Device string `yaml:"device"`

	// SocketPath is the feed's unix socket endpoint.
	SocketPath string `yaml:"socket_path"`

	// Console enables the terminal dashboard. It is suppressed
	// automatically when stdout is not a terminal.
	Console bool `yaml:"console"`

	// GracePeriod bounds graceful shutdown, as a Go duration string
	// (e.g. "1s").
	GracePeriod string `yaml:"grace_period"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RateHz:      10,
		Device:      "/dev/input/js0",
		SocketPath:  "/run/padscope/feed.sock",
		Console:     true,
		GracePeriod: "1s",
		LogLevel:    "info",
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.RateHz <= 0 || c.RateHz > 1000 {
		return fmt.Errorf("rate_hz must be in 1..1000, got %d", c.RateHz)
	}
	if c.SocketPath == "" {
		return fmt.Errorf("socket_path must not be empty")
	}
	if _, err := c.Grace(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}
	return nil
}

// Grace parses the grace period.
func (c *Config) Grace() (time.Duration, error) {
	d, err := time.ParseDuration(c.GracePeriod)
	if err != nil {
		return 0, fmt.Errorf("invalid grace_period %q: %w", c.GracePeriod, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("grace_period must be positive, got %s", c.GracePeriod)
	}
	return d, nil
}
