package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_URL", "https://api.investa.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_MissingAPIURL(t *testing.T) {
	t.Setenv("API_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_URL is required")
}

func TestValidate_RelativeAPIURL(t *testing.T) {
	cfg := &Config{APIURL: "/just/a/path", SessionTTL: time.Hour}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absolute URL")
}

func TestValidate_ProductionRequiresRedis(t *testing.T) {
	cfg := &Config{Env: "production", APIURL: "https://api.investa.example", SessionTTL: time.Hour}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_URL")
}

func TestLoad_SessionTTLOverride(t *testing.T) {
	t.Setenv("API_URL", "https://api.investa.example")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	t.Setenv("API_URL", "https://api.investa.example")
	t.Setenv("ALLOWED_ORIGINS", "https://app.investa.example, https://staging.investa.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.investa.example", "https://staging.investa.example"}, cfg.AllowedOrigins)
}
