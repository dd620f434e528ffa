// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: process-local cache on patrickmn/go-cache
// - cache/redis: shared cache on go-redis
// - cache/sqlite: file-backed cache on mattn/go-sqlite3
// - logger/logrus: structured logger on logrus, with lumberjack rotation
//
// All caches return interfaces.ErrCacheMiss for absent or expired keys and
// treat a zero TTL as "never expires".
//
// # Cache Example
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "weeks:span:mon-4:2023:31", data, time.Hour)
//	value, err := cache.Get(ctx, "weeks:span:mon-4:2023:31")
//
// # Logger Example
//
//	logger, err := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Resolved week range", map[string]interface{}{
//	    "year": 2023,
//	    "week": 31,
//	})
package infrastructure
