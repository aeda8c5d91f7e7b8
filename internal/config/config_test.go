package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouterBaseURL)
	assert.Equal(t, "openrouter/auto", cfg.OpenRouterModel)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.Equal(t, 30, cfg.RateLimitPerMin)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)

	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.IsProd())
	assert.False(t, cfg.PersistenceEnabled())
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_URL", "postgres://localhost:5432/app")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("CACHE_TTL", "10m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.IsProd())
	assert.True(t, cfg.PersistenceEnabled())
	assert.True(t, cfg.CacheEnabled())
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
}
