// Package config loads harpoon configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (HARPOON_*)
//  2. Config file
//  3. Built-in defaults
//
// Config file search order:
//  1. .harpoon.yaml in current directory
//  2. ~/.config/harpoon/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all harpoon configuration.
type Config struct {
	// Mux forces a multiplexer backend ("tmux"). Empty auto-detects.
	Mux string `yaml:"mux"`

	// Theme selects the overlay color theme: "dark" (default) or "light".
	Theme string `yaml:"theme"`

	// Refresh is the overlay snapshot interval as a Go duration string,
	// e.g. "1s". "0", "off" or "disable" turn periodic refresh off.
	Refresh string `yaml:"refresh"`

	// DBPath overrides the bookmark database location.
	DBPath string `yaml:"db_path"`

	// LogLevel sets file log verbosity: debug, info, warn, error, off.
	LogLevel string `yaml:"log_level"`

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs, e.g. "Authorization=Basic abc123"

	// Parsed durations (not from YAML, set after loading)
	RefreshDuration time.Duration `yaml:"-"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		Theme:    "dark",
		Refresh:  "1s",
		LogLevel: "info",
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values.
func Load() (*Config, error) {
	cfg := Defaults()

	// Try to load config file
	if path, data, err := findConfigFile(); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, &fileCfg)
	}

	// Environment variables override everything
	mergeEnv(cfg)

	// Parse durations
	var err error
	cfg.RefreshDuration, err = parseDurationOrDisable(cfg.Refresh, time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh interval %q: %w", cfg.Refresh, err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	// 1. Current directory
	if data, err := os.ReadFile(".harpoon.yaml"); err == nil {
		return ".harpoon.yaml", data, nil
	}

	// 2. XDG config dir / ~/.config
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "harpoon", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.Mux != "" {
		cfg.Mux = file.Mux
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.Refresh != "" {
		cfg.Refresh = file.Refresh
	}
	if file.DBPath != "" {
		cfg.DBPath = file.DBPath
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) {
	if v := os.Getenv("HARPOON_MUX"); v != "" {
		cfg.Mux = v
	}
	if v := os.Getenv("HARPOON_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("HARPOON_REFRESH"); v != "" {
		cfg.Refresh = v
	}
	if v := os.Getenv("HARPOON_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("HARPOON_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
}

// parseDurationOrDisable parses a duration string. "0", "off", "disable" return 0.
// Empty string returns the fallback value.
func parseDurationOrDisable(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	if s == "0" || s == "off" || s == "disable" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
