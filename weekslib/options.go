// ABOUTME: Configuration options for the weeks library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package weeks

import (
	"time"

	"weekcal-api/core/calendar"
	"weekcal-api/core/domain"
	"weekcal-api/core/interfaces"
	"weekcal-api/core/week"
	"weekcal-api/infrastructure/logger/logrus"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithClock sets the clock used by Current
func WithClock(clock interfaces.Clock) Option {
	return func(c *Config) error {
		c.Clock = clock
		return nil
	}
}

// WithCacheTTL sets the TTL for cached week ranges. Zero keeps entries forever.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return NewError(ErrorTypeConfiguration, "cache TTL cannot be negative").
				WithContext("ttl", ttl.String())
		}
		c.CacheTTL = ttl
		return nil
	}
}

// WithPolicy sets the numbering policy used by every call
func WithPolicy(policy domain.Policy) Option {
	return func(c *Config) error {
		if err := policy.Validate(); err != nil {
			return NewError(ErrorTypeValidation, "invalid policy").WithCause(err)
		}
		c.Policy = policy
		return nil
	}
}

// WithLocale derives the policy from a BCP 47 tag such as "en-US"
func WithLocale(tag string) Option {
	return func(c *Config) error {
		policy, err := calendar.PolicyForLocale(tag)
		if err != nil {
			return NewError(ErrorTypeValidation, "invalid locale").
				WithCause(err).
				WithContext("locale", tag)
		}
		c.Policy = policy
		return nil
	}
}

// WithPolicyNames overrides the first day and rule by name ("sunday",
// "first-full-week"). Empty names keep the current setting.
func WithPolicyNames(firstDay, rule string) Option {
	return func(c *Config) error {
		policy, err := domain.ParsePolicy(c.Policy, firstDay, rule)
		if err != nil {
			return NewError(ErrorTypeValidation, "invalid policy").WithCause(err)
		}
		c.Policy = policy
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Logger:   logrus.NewNop(),
		Clock:    interfaces.SystemClock,
		CacheTTL: week.DefaultCacheTTL,
		Policy:   domain.DefaultPolicy,
	}
}
