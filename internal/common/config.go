// Package common provides shared utilities for myxview
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for myxview
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds paths for the two storage areas.
type StorageConfig struct {
	// Snapshots is the directory of dated end-of-day CSV files
	// (one YYYYMMDD.csv per trading day).
	Snapshots AreaConfig `toml:"snapshots"`
	// Watchlist is the BadgerHold path for persisted watchlists.
	Watchlist AreaConfig `toml:"watchlist"`
	// MaxCachedSnapshots bounds the in-memory parsed-file cache.
	MaxCachedSnapshots int `toml:"max_cached_snapshots"`
}

// AreaConfig holds path configuration for a storage area.
type AreaConfig struct {
	Path string `toml:"path"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Predict PredictConfig `toml:"predict"`
}

// PredictConfig holds prediction service configuration
type PredictConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *PredictConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Snapshots:          AreaConfig{Path: "data/eod_myx"},
			Watchlist:          AreaConfig{Path: "data/watchlist"},
			MaxCachedSnapshots: 64,
		},
		Clients: ClientsConfig{
			Predict: PredictConfig{
				BaseURL:   "http://localhost:5000",
				RateLimit: 5,
				Timeout:   "30s",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console"},
			FilePath:   "./logs/myxview.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if config.Storage.MaxCachedSnapshots <= 0 {
		config.Storage.MaxCachedSnapshots = 64
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("MYX_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("MYX_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("MYX_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("MYX_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("MYX_DATA_PATH"); path != "" {
		config.Storage.Snapshots.Path = path
	}

	if path := os.Getenv("MYX_WATCHLIST_PATH"); path != "" {
		config.Storage.Watchlist.Path = path
	}

	if url := os.Getenv("MYX_PREDICT_URL"); url != "" {
		config.Clients.Predict.BaseURL = url
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
