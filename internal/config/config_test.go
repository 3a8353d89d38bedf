package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "https://randomuser.me/api", cfg.Endpoint.BaseURL)
	assert.Equal(t, "", cfg.Endpoint.Timeout)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Equal(t, "userdeck.log", cfg.Logging.File)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Endpoint, cfg.Endpoint)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Logging, cfg.Logging)
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "userdeck.yaml")

	cfg := DefaultConfig()
	cfg.Endpoint.BaseURL = "http://localhost:9999/api"
	cfg.Endpoint.Timeout = "5s"
	cfg.UI.Theme = "dark"
	cfg.Logging.Level = "debug"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/api", loaded.Endpoint.BaseURL)
	assert.Equal(t, 5*time.Second, loaded.GetRequestTimeout())
	assert.Equal(t, "dark", loaded.UI.Theme)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint:\n  base_url: http://example.test/api\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/api", cfg.Endpoint.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 96, cfg.UI.MaxCardWidth)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("endpoint and timeout", func(t *testing.T) {
		t.Setenv("USERDECK_ENDPOINT", "http://mock:8080/api")
		t.Setenv("USERDECK_TIMEOUT", "250ms")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "http://mock:8080/api", cfg.Endpoint.BaseURL)
		assert.Equal(t, 250*time.Millisecond, cfg.GetRequestTimeout())
	})

	t.Run("logging and theme", func(t *testing.T) {
		t.Setenv("USERDECK_LOG_LEVEL", "warn")
		t.Setenv("USERDECK_LOG_FILE", "/tmp/deck.log")
		t.Setenv("USERDECK_THEME", "light")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "/tmp/deck.log", cfg.Logging.File)
		assert.Equal(t, "light", cfg.UI.Theme)
	})

	t.Run("env wins over file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "userdeck.yaml")
		require.NoError(t, os.WriteFile(path, []byte("endpoint:\n  base_url: http://file/api\n"), 0644))
		t.Setenv("USERDECK_ENDPOINT", "http://env/api")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://env/api", cfg.Endpoint.BaseURL)
	})
}

func TestGetRequestTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Duration(0), cfg.GetRequestTimeout())

	cfg.Endpoint.Timeout = "2m"
	assert.Equal(t, 2*time.Minute, cfg.GetRequestTimeout())

	cfg.Endpoint.Timeout = "soon"
	assert.Equal(t, time.Duration(0), cfg.GetRequestTimeout())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"relative url", func(c *Config) { c.Endpoint.BaseURL = "randomuser.me/api" }, "must use http or https"},
		{"no host", func(c *Config) { c.Endpoint.BaseURL = "https:///api" }, "has no host"},
		{"bad timeout", func(c *Config) { c.Endpoint.Timeout = "ten" }, "invalid endpoint timeout"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "invalid logging level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "invalid logging format"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "invalid ui theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
