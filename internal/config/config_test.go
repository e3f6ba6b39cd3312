package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "POSTGRES_URI", "REDIS_URI", "GENERATION_DELAY_MS",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "STATS_TTL_DAYS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.PostgresURI)
	assert.Empty(t, cfg.RedisURI)
	assert.Equal(t, 2*time.Second, cfg.GenerationDelay)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, 30*24*time.Hour, cfg.StatsTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.IsProduction())
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("GENERATION_DELAY_MS", "0")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("REDIS_URI", "redis://localhost:6379/1")

	cfg := NewConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Duration(0), cfg.GenerationDelay)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, "redis://localhost:6379/1", cfg.RedisURI)
}

func TestNewConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("GENERATION_DELAY_MS", "soon")
	t.Setenv("RATE_LIMIT_RPS", "-1")
	t.Setenv("RATE_LIMIT_BURST", "-3")

	cfg := NewConfig()

	assert.Equal(t, 2*time.Second, cfg.GenerationDelay)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}
