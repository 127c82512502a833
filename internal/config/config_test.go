package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := Path(t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("no .addonsync.yaml returns defaults", func(t *testing.T) {
		cfg, err := Load(Path(t.TempDir()))
		require.NoError(t, err)

		assert.Equal(t, DefaultAPIURL, cfg.APIURL)
		assert.Equal(t, DefaultListen, cfg.Listen)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	})

	t.Run("full .addonsync.yaml loads all values", func(t *testing.T) {
		path := writeConfig(t, `api_url: http://localhost:9000/api/
listen: 0.0.0.0:9999
log_level: debug
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:9000/api/", cfg.APIURL)
		assert.Equal(t, "0.0.0.0:9999", cfg.Listen)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("partial .addonsync.yaml merges with defaults", func(t *testing.T) {
		path := writeConfig(t, `log_level: info
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, DefaultAPIURL, cfg.APIURL) // default
		assert.Equal(t, DefaultListen, cfg.Listen) // default
	})

	t.Run("blank api_url falls back to default", func(t *testing.T) {
		path := writeConfig(t, `api_url: ""
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	})

	t.Run("invalid YAML returns error with filename", func(t *testing.T) {
		path := writeConfig(t, `api_url: [invalid yaml
this is not valid
`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".addonsync.yaml")
	})

	t.Run("empty .addonsync.yaml returns defaults", func(t *testing.T) {
		path := writeConfig(t, "")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("unreadable path returns error", func(t *testing.T) {
		// A directory where a file is expected
		dir := t.TempDir()
		path := filepath.Join(dir, FileName)
		require.NoError(t, os.Mkdir(path, 0755))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://api.strem.io/api/", cfg.APIURL)
	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, ".addonsync.yaml"), Path(dir))
}
