package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Game rules (timezone, epoch,
// shuffle seed, guess budget, thresholds) are compiled constants, not config:
// every deployment must agree on them for the daily secret to line up.
type Config struct {
	Catalog struct {
		JSONPath   string `yaml:"json_path" default:"data/stocks.json"`
		CSVPath    string `yaml:"csv_path"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"catalog"`
	Suggest struct {
		Limit int `yaml:"limit" default:"5"` // 0 disables suggestions
	} `yaml:"suggest"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"` // console or json
	} `yaml:"log"`
}

// Load reads config from a YAML file, fills defaults, then applies
// environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("CATALOG_JSON"); v != "" {
		cfg.Catalog.JSONPath = v
	}
	if v := os.Getenv("CATALOG_CSV"); v != "" {
		cfg.Catalog.CSVPath = v
	}
	if v := os.Getenv("CATALOG_SQLITE"); v != "" {
		cfg.Catalog.SQLitePath = v
	}
	if v := os.Getenv("SUGGEST_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Suggest.Limit = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Catalog.JSONPath == "" && c.Catalog.CSVPath == "" && c.Catalog.SQLitePath == "" {
		return fmt.Errorf("at least one catalog source path is required")
	}
	if c.Suggest.Limit < 0 {
		return fmt.Errorf("suggest.limit must not be negative")
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be console or json")
	}
	return nil
}
