// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, calendar policy, logging and rate limiting

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"weekcal-api/core/calendar"
	"weekcal-api/core/domain"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Calendar selects the week numbering policy used when a request names none
	Calendar CalendarConfig

	// Log contains logger configuration
	Log LogConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is how often expired entries are swept, in seconds
	DefaultExpiration int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file. ":memory:" keeps it in process.
	Path string
}

// CalendarConfig holds the default week numbering policy
type CalendarConfig struct {
	// Locale is a BCP 47 tag; when set it picks the base policy
	Locale string

	// FirstDay overrides the first day of the week ("monday", "sun", ...)
	FirstDay string

	// Rule overrides the week-one rule ("first-four-day-week", "iso", ...)
	Rule string

	// CacheTTL is how long resolved week ranges stay cached
	CacheTTL time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string

	// File, when set, receives rotated log output instead of stdout
	File string
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate; zero disables limiting
	RequestsPerSecond float64

	// Burst is the bucket size
	Burst int
}

// LoadDotEnv loads variables from the given .env files (default ".env") into
// the process environment without overriding values that are already set.
// A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			ShutdownTimeout: time.Duration(getEnvAsIntOrDefault("SHUTDOWN_TIMEOUT", 30)) * time.Second,
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "weekcal_cache.db"),
			},
		},
		Calendar: CalendarConfig{
			Locale:   getEnvOrDefault("WEEK_LOCALE", ""),
			FirstDay: getEnvOrDefault("WEEK_FIRST_DAY", ""),
			Rule:     getEnvOrDefault("WEEK_RULE", ""),
			CacheTTL: time.Duration(getEnvAsIntOrDefault("WEEK_CACHE_TTL", 7*24*3600)) * time.Second,
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json")),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloatOrDefault("RATE_LIMIT", 10),
			Burst:             getEnvAsIntOrDefault("RATE_BURST", 20),
		},
	}

	return cfg, nil
}

// Policy builds the default week policy: the locale's policy when a locale
// is configured, otherwise Monday/first-four-day-week, then the explicit
// first-day and rule overrides.
func (c CalendarConfig) Policy() (domain.Policy, error) {
	base := domain.DefaultPolicy
	if c.Locale != "" {
		p, err := calendar.PolicyForLocale(c.Locale)
		if err != nil {
			return domain.Policy{}, err
		}
		base = p
	}
	return domain.ParsePolicy(base, c.FirstDay, c.Rule)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Calendar.CacheTTL < 0 {
		return errors.New("week cache ttl cannot be negative")
	}

	if _, err := c.Calendar.Policy(); err != nil {
		return fmt.Errorf("invalid calendar policy: %w", err)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate limit values cannot be negative")
	}

	return nil
}
