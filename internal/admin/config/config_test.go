package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api", c.BaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 10, c.PageSize)
	assert.Equal(t, "qradmin.db", c.DBPath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())

	path := writeTempJSON(t, "", "", map[string]any{
		"api_url":   "http://from-json/api",
		"page_size": 25,
	})
	t.Setenv(EnvAPIURL, "http://from-env/api")
	t.Setenv(EnvLogLevel, "debug")

	os.Args = []string{"qradmin", "-c", path, "-l", "5"}
	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://from-json/api", cfg.BaseURL)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
