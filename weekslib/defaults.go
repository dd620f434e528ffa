// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for caches and loggers the client can use

package weeks

import (
	"os"

	"weekcal-api/core/interfaces"
	"weekcal-api/infrastructure/cache/memory"
	"weekcal-api/infrastructure/cache/sqlite"
	"weekcal-api/infrastructure/logger/logrus"
)

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultSQLiteCache creates a SQLite cache stored at filePath
func DefaultSQLiteCache(filePath string) (*sqlite.Client, error) {
	return sqlite.NewSQLiteCache(filePath)
}

// DefaultLogger creates a text logger at info level writing to stderr
func DefaultLogger() interfaces.Logger {
	logger, err := logrus.New(logrus.Options{
		Level:  "info",
		Format: "text",
		Output: os.Stderr,
	})
	if err != nil {
		return logrus.NewNop()
	}
	return logger
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return logrus.NewNop()
}

// CacheOption represents cache configuration options
type CacheOption struct {
	Type     CacheType
	FilePath string // For SQLite cache
}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
)

// WithCacheOption creates a cache based on the provided options. A SQLite
// cache opened here is closed by Client.Close.
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = "weekcal_cache.db"
			}
			cache, err := DefaultSQLiteCache(opt.FilePath)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to open SQLite cache").
					WithCause(err).
					WithContext("path", opt.FilePath)
			}
			c.Cache = cache
			c.closers = append(c.closers, cache.Close)
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type").
				WithContext("type", string(opt.Type))
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithVerboseLogging logs to stderr at info level
func WithVerboseLogging() Option {
	return func(c *Config) error {
		c.Logger = DefaultLogger()
		return nil
	}
}
