package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validYAML = `
environment: test
server:
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
  shutdown_timeout: 5s
logging:
  level: info
  format: console
  output: stdout
finnhub:
  api_key: ""
  base_url: https://finnhub.io/api/v1
  request_interval: 250ms
  timeout: 3s
orchestrator:
  default_symbols: [SPY, QQQ, DIA]
  request_timeout: 5s
news:
  source: synthetic
  cache_ttl: 30m
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)
	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, []string{"SPY", "QQQ", "DIA"}, cfg.Orchestrator.DefaultSymbols)
	require.False(t, cfg.HasCredential())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty environment", func(c *Config) { c.Environment = "" }, "environment"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"no symbols", func(c *Config) { c.Orchestrator.DefaultSymbols = nil }, "default_symbols"},
		{"bad news source", func(c *Config) { c.News.Source = "rss" }, "news.source"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, validYAML))
			require.NoError(t, err)
			tc.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadWithEnv_Overrides(t *testing.T) {
	t.Setenv("FINNHUB_API_KEY", "env-key")
	t.Setenv("SYMBOLS", "IWM,VTI")
	t.Setenv("PORT", "9090")
	t.Setenv("NEWS_SOURCE", "finnhub")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	require.NoError(t, err)
	require.Equal(t, "env-key", cfg.Finnhub.APIKey)
	require.True(t, cfg.HasCredential())
	require.Equal(t, []string{"IWM", "VTI"}, cfg.Orchestrator.DefaultSymbols)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "finnhub", cfg.News.Source)
}

func TestLoadWithEnv_IgnoresBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
}
