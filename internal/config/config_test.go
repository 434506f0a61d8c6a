package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:8080")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("JWT_SECRET", "testsecret123456789012345678901234")
	t.Setenv("MOCK_LATENCY_MS", "600")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	require.False(t, cfg.MockOnly())
	require.Equal(t, 600*time.Millisecond, cfg.API.MockLatency)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	require.Equal(t, "revisaai", cfg.MongoDB.Database)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr())
	require.Equal(t, 120*time.Minute, cfg.JWT.AccessTokenTTL)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 2.5, cfg.RateLimit.RPS)
	require.Equal(t, "sqlite", cfg.Session.Backend)
}

func TestLoadConfigWithoutAPIURLIsMockOnly(t *testing.T) {
	t.Setenv("API_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.MockOnly())
	require.Equal(t, "8080", cfg.Server.Port)
}
