//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"rental-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("SESSION_SECRET", "secret")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, config.StorageDriverMemory, cfg.Storage.Driver)
		assert.Equal(t, 5242880, cfg.Storage.QuotaBytes)
		assert.Equal(t, 720*time.Hour, cfg.Storage.TTL)
		assert.Equal(t, "rb_scope", cfg.Session.CookieName)
		assert.Equal(t, "data/offers.json", cfg.Catalog.Path)
		assert.Equal(t, 15*time.Second, cfg.Stream.KeepAlive)
		assert.Equal(t, []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}, cfg.CORS.AllowMethods)
	})

	t.Run("missing required values", func(t *testing.T) {
		// Setenv registers the restore; Unsetenv makes the key absent
		t.Setenv("PORT", "")
		t.Setenv("SESSION_SECRET", "")
		require.NoError(t, os.Unsetenv("PORT"))
		require.NoError(t, os.Unsetenv("SESSION_SECRET"))

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("explicit storage driver", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("SESSION_SECRET", "secret")
		t.Setenv("STORAGE_DRIVER", "redis")
		t.Setenv("REDIS_ADDR", "cache:6379")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, config.StorageDriverRedis, cfg.Storage.Driver)
		assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	})
}

func TestBuildDSN(t *testing.T) {
	db := config.DBConfig{
		Host: "db", Port: "5432", User: "u", Password: "p",
		DBName: "rental", SSLMode: "disable", TimeZone: "UTC",
	}
	assert.Equal(t, "postgres://u:p@db:5432/rental?sslmode=disable&timezone=UTC", db.BuildDSN())
}
