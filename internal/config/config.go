// Package config loads the optional .addonsync.yaml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/addonsync/internal/stremio"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the user configuration file.
	FileName = ".addonsync.yaml"

	// Default configuration values
	DefaultAPIURL   = stremio.DefaultBaseURL
	DefaultListen   = "127.0.0.1:8080"
	DefaultLogLevel = "warn"
)

// Config represents user configuration from .addonsync.yaml.
// This file is user-managed and never written by addonsync. The auth key
// is intentionally not configurable here.
type Config struct {
	// APIURL is the base URL of the Stremio API.
	APIURL string `yaml:"api_url"`

	// Listen is the address `addonsync serve` binds to.
	Listen string `yaml:"listen"`

	// LogLevel is one of panic, fatal, error, warn, info, debug, trace.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		APIURL:   DefaultAPIURL,
		Listen:   DefaultListen,
		LogLevel: DefaultLogLevel,
	}
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the config file at path if it exists, otherwise returns
// defaults. Partial config files are merged with defaults.
func Load(path string) (*Config, error) {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	// Explicitly blank values fall back to defaults
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}

	return cfg, nil
}
