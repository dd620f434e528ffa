// ABOUTME: Selects and builds the configured cache backend
// ABOUTME: Falls back to the in-memory cache when a remote or file backend cannot be opened

package cache

import (
	"time"

	"weekcal-api/core/interfaces"
	"weekcal-api/infrastructure/cache/memory"
	"weekcal-api/infrastructure/cache/redis"
	"weekcal-api/infrastructure/cache/sqlite"
	"weekcal-api/pkg/config"
)

// NewFromConfig returns the cache named by cfg.Type and a function that
// releases it. Backend failures are logged and replaced by a memory cache.
func NewFromConfig(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func() error) {
	noop := func() error { return nil }

	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"address": cfg.Redis.Address,
				"error":   err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return redisCache, redisCache.Close

	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCacheWithLogger(cfg.SQLite.Path, logger)
		if err != nil {
			logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
				"path":  cfg.SQLite.Path,
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.SQLite.Path,
		})
		return sqliteCache, sqliteCache.Close
	}

	cleanup := time.Duration(cfg.Memory.DefaultExpiration) * time.Second
	if cleanup <= 0 {
		cleanup = memory.DefaultCleanupInterval
	}
	logger.Info("Using memory cache", map[string]interface{}{
		"cleanup_interval": cleanup.String(),
	})
	return memory.NewMemoryCacheWithCleanup(cleanup), noop
}
