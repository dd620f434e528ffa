package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekcal-api/infrastructure/cache/memory"
	"weekcal-api/infrastructure/cache/sqlite"
	"weekcal-api/infrastructure/logger/logrus"
	"weekcal-api/pkg/config"
)

func TestNewFromConfig_Memory(t *testing.T) {
	c, closeFn := NewFromConfig(config.CacheConfig{Type: "memory"}, logrus.NewNop())
	defer closeFn()

	assert.IsType(t, &memory.MemoryCache{}, c)
}

func TestNewFromConfig_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weeks.db")
	c, closeFn := NewFromConfig(config.CacheConfig{
		Type:   "sqlite",
		SQLite: config.SQLiteConfig{Path: path},
	}, logrus.NewNop())
	defer closeFn()

	require.IsType(t, &sqlite.Client{}, c)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestNewFromConfig_SQLiteFallsBack(t *testing.T) {
	c, closeFn := NewFromConfig(config.CacheConfig{
		Type:   "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "missing", "dir", "weeks.db")},
	}, logrus.NewNop())
	defer closeFn()

	assert.IsType(t, &memory.MemoryCache{}, c)
}

func TestNewFromConfig_RedisFallsBack(t *testing.T) {
	c, closeFn := NewFromConfig(config.CacheConfig{
		Type:  "redis",
		Redis: config.RedisConfig{Address: "127.0.0.1:1"},
	}, logrus.NewNop())
	defer closeFn()

	assert.IsType(t, &memory.MemoryCache{}, c)
}
