package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ReferEarn/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, time.Duration(0), cfg.BackendTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "referearn_visitor", cfg.SessionCookie)
	assert.Equal(t, 250*time.Millisecond, cfg.FallbackAfter)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND_URL", "https://api.example.com")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://api.example.com", cfg.BackendURL)
	assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("INSTANCE_NAME=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("INSTANCE_NAME") })

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.InstanceName)
}
