package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("INDEX_CACHE_TTL", "")
	t.Setenv("PAGE_SIZE", "")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 20*time.Second, cfg.IndexCacheTTL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "local", cfg.StorageBackend)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("INDEX_CACHE_TTL", "45")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg := Load()

	assert.Equal(t, 45*time.Second, cfg.IndexCacheTTL)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.True(t, cfg.SeedDemoData)
}
