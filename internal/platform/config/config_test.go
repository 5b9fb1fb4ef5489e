package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv は設定に影響する環境変数を空にします。
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SERVER_ADDR", "GIN_MODE", "ALLOWED_ORIGINS", "HTTP_TIMEOUT", "HTTPS_PROXY",
		"YAHOO_BASE_URL", "NEWS_API_BASE_URL", "NEWS_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "https://query1.finance.yahoo.com", cfg.Market.BaseURL)
	assert.Equal(t, "https://newsapi.org", cfg.News.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.News.Timeout)
	assert.Empty(t, cfg.News.APIKey)
}

func TestLoad_YAMLThenEnvOverrides(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, `
server:
  addr: ":9000"
  gin_mode: debug
  allowed_origins: ["http://localhost:3000"]
http:
  timeout: 3s
market:
  base_url: http://yahoo.local
news:
  api_key: from-file
  base_url: http://news.local
  timeout: 2s
`)
	t.Setenv("NEWS_API_KEY", "from-env")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "http://yahoo.local", cfg.Market.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Market.Timeout)
	assert.Equal(t, "from-env", cfg.News.APIKey)
	assert.Equal(t, "http://news.local", cfg.News.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.News.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeFile(t, "server: [not a map"))
	assert.ErrorContains(t, err, "parse config")

	t.Setenv("HTTP_TIMEOUT", "soon")
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "HTTP_TIMEOUT")
}

func TestConfig_Validate(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "NEWS_API_KEY")

	cfg.News.APIKey = "key"
	assert.NoError(t, cfg.Validate())

	cfg.Server.GinMode = "verbose"
	assert.Error(t, cfg.Validate())
}
