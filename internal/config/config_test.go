package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "customer", cfg.Users.DefaultRoleName)
	assert.Equal(t, 10, cfg.Users.BcryptCost)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":               "production",
		"DB_DRIVER":         "sqlite",
		"DB_DSN":            "file:users.db",
		"DEFAULT_ROLE_NAME": "member",
		"CACHE_TTL":         "30s",
		"LOG_PRETTY":        "true",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:users.db", cfg.Database.DSN)
	assert.Equal(t, "member", cfg.Users.DefaultRoleName)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_InvalidValue(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"REDIS_DB": "not-a-number",
	}))
	assert.Error(t, err)
}
