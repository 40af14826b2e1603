// Package models defines data structures for configuration, messages and
// extraction results.
package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOrigin    = "https://leetcode.com"
	DefaultPanelPath = "index.html"
)

// Config holds runtime configuration. Values come from an optional YAML
// file; CLI flags override them.
type Config struct {
	Origin    string      `yaml:"origin"`
	PanelPath string      `yaml:"panel_path"`
	DBPath    string      `yaml:"db_path"`
	LogLevel  string      `yaml:"log_level"`
	Fetch     FetchConfig `yaml:"fetch"`
	Selectors Selectors   `yaml:"selectors"`
}

// FetchConfig controls how page snapshots are fetched for --url input.
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	Retries   int           `yaml:"retries"`
	UserAgent string        `yaml:"user_agent"`
	CacheDir  string        `yaml:"cache_dir"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

// DefaultConfig returns a configuration with the stock problem-page selectors.
func DefaultConfig() *Config {
	return &Config{
		Origin:    DefaultOrigin,
		PanelPath: DefaultPanelPath,
		LogLevel:  "info",
		Fetch: FetchConfig{
			Timeout:   30 * time.Second,
			Retries:   3,
			UserAgent: "algosensei/1.0",
		},
		Selectors: DefaultSelectors(),
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.merge(fileCfg)
	return cfg, nil
}

// merge copies every non-zero field of other onto c.
func (c *Config) merge(other Config) {
	if other.Origin != "" {
		c.Origin = other.Origin
	}
	if other.PanelPath != "" {
		c.PanelPath = other.PanelPath
	}
	if other.DBPath != "" {
		c.DBPath = other.DBPath
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Fetch.Timeout > 0 {
		c.Fetch.Timeout = other.Fetch.Timeout
	}
	if other.Fetch.Retries > 0 {
		c.Fetch.Retries = other.Fetch.Retries
	}
	if other.Fetch.UserAgent != "" {
		c.Fetch.UserAgent = other.Fetch.UserAgent
	}
	if other.Fetch.CacheDir != "" {
		c.Fetch.CacheDir = other.Fetch.CacheDir
	}
	if other.Fetch.CacheTTL > 0 {
		c.Fetch.CacheTTL = other.Fetch.CacheTTL
	}
	c.Selectors = c.Selectors.Override(other.Selectors)
}
