package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Finnhub struct {
		APIKey          string        `yaml:"api_key"`
		BaseURL         string        `yaml:"base_url"`
		RequestInterval time.Duration `yaml:"request_interval"`
		Timeout         time.Duration `yaml:"timeout"`
	} `yaml:"finnhub"`
	Orchestrator struct {
		DefaultSymbols []string      `yaml:"default_symbols"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
	} `yaml:"orchestrator"`
	News struct {
		Source   string        `yaml:"source"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"news"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.Finnhub.APIKey = v
	}
	if v := os.Getenv("SYMBOLS"); v != "" {
		c.Orchestrator.DefaultSymbols = strings.Split(v, ",")
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("NEWS_SOURCE"); v != "" {
		c.News.Source = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
// The Finnhub API key is deliberately optional: without it the orchestrator
// skips the primary tier and serves synthetic quotes.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if len(c.Orchestrator.DefaultSymbols) == 0 {
		return fmt.Errorf("orchestrator.default_symbols cannot be empty")
	}
	if c.News.Source != "" && c.News.Source != "finnhub" && c.News.Source != "synthetic" {
		return fmt.Errorf("news.source must be 'finnhub' or 'synthetic', got '%s'", c.News.Source)
	}
	return nil
}

// HasCredential reports whether a primary-provider API key is configured.
func (c *Config) HasCredential() bool {
	return c.Finnhub.APIKey != ""
}
