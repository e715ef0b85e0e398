//go:build unit

package config_test

import (
	"testing"
	"time"

	"cancha-client/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8081", cfg.Services.VenuesURL)
	assert.Equal(t, "http://localhost:8082", cfg.Services.AvailabilityURL)
	assert.Equal(t, "http://localhost:8083", cfg.Services.UsersURL)
	assert.Equal(t, "http://localhost:8084", cfg.Services.ReservationsURL)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VENUES_URL", "http://venues.internal:9000")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://venues.internal:9000", cfg.Services.VenuesURL)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr())
}

func TestNewTestConfig(t *testing.T) {
	cfg := config.NewTestConfig()
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "localhost:16379", cfg.Redis.Addr())
}
