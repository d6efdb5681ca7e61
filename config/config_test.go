package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production") // skip .env lookup
	for _, key := range []string{"SERVER_PORT", "SEED_FILE", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW_SECONDS"} {
		t.Setenv(key, "")
	}
	t.Setenv("SERVER_PORT", "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "", cfg.SeedFile)
	assert.Nil(t, cfg.CORSAllowedOrigins)
	assert.Equal(t, 120, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", ":9090")
	t.Setenv("SEED_FILE", "/tmp/seed.yaml")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://forms.example.com")
	t.Setenv("RATE_LIMIT_REQUESTS", "10")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "/tmp/seed.yaml", cfg.SeedFile)
	assert.Equal(t, []string{"http://localhost:5173", "https://forms.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10, cfg.RateLimitRequests)
	assert.Equal(t, 5*time.Second, cfg.RateLimitWindow)
}

func TestLoadConfigInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("RATE_LIMIT_REQUESTS", "lots")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "-3")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoadConfigEmptyPort(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
