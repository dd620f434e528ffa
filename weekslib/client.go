// ABOUTME: Main client for the weeks library mapping dates to calendar weeks
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package weeks

import (
	"context"
	"errors"
	"sync"
	"time"

	"weekcal-api/core/domain"
	"weekcal-api/core/interfaces"
	"weekcal-api/core/week"
)

// Client is the main entry point for the weeks library. All calls use the
// policy configured at construction.
type Client struct {
	service *week.Service
	config  Config

	mu     sync.RWMutex
	closed bool
}

// Config holds the configuration for the client
type Config struct {
	// Cache memoises resolved week ranges (defaults to an in-memory cache)
	Cache interfaces.Cache

	// Logger configuration
	Logger interfaces.Logger

	// Clock supplies "now" for Current
	Clock interfaces.Clock

	// CacheTTL bounds how long a resolved range stays cached
	CacheTTL time.Duration

	// Policy governs week numbering
	Policy domain.Policy

	closers []func() error
}

// NewClient creates a new weeks client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			closeAll(config.closers)
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		closeAll(config.closers)
		return nil, err
	}

	deps := interfaces.Dependencies{
		Cache:  config.Cache,
		Logger: config.Logger,
		Clock:  config.Clock,
	}

	return &Client{
		service: week.NewService(deps, config.CacheTTL),
		config:  config,
	}, nil
}

// validateConfig fills unset dependencies and checks the policy
func validateConfig(config *Config) error {
	if config.Cache == nil {
		config.Cache = DefaultMemoryCache()
	}
	if config.Logger == nil {
		config.Logger = QuietLogger()
	}
	if config.Clock == nil {
		config.Clock = interfaces.SystemClock
	}
	if err := config.Policy.Validate(); err != nil {
		return NewError(ErrorTypeValidation, "invalid policy").WithCause(err)
	}
	return nil
}

// Policy returns the numbering policy the client applies
func (c *Client) Policy() Policy {
	return c.config.Policy
}

// WeekOf returns the week number of date in its own year
func (c *Client) WeekOf(date time.Time) int {
	return c.service.WeekOf(date, c.config.Policy)
}

// Week returns week number of year
func (c *Client) Week(ctx context.Context, year, number int) (Week, error) {
	if err := c.checkClosed(); err != nil {
		return Week{}, err
	}
	w, err := c.service.FromNumber(ctx, year, number, c.config.Policy)
	if err != nil {
		return Week{}, fromCore(err, "failed to resolve week")
	}
	return w, nil
}

// Range returns the span of week number of year
func (c *Client) Range(ctx context.Context, year, number int) (Span, error) {
	if err := c.checkClosed(); err != nil {
		return Span{}, err
	}
	span, err := c.service.ResolveRange(ctx, year, number, c.config.Policy)
	if err != nil {
		return Span{}, fromCore(err, "failed to resolve range")
	}
	return span, nil
}

// WeekOfDate returns the week containing date
func (c *Client) WeekOfDate(ctx context.Context, date time.Time) (Week, error) {
	if err := c.checkClosed(); err != nil {
		return Week{}, err
	}
	return c.service.FromDate(ctx, date, c.config.Policy), nil
}

// Current returns the week containing the client's current instant
func (c *Client) Current(ctx context.Context) (Week, error) {
	if err := c.checkClosed(); err != nil {
		return Week{}, err
	}
	return c.service.Current(ctx, c.config.Policy), nil
}

// Parse resolves a year-first label such as "2023-31" or "2023-W31"
func (c *Client) Parse(ctx context.Context, label string) (Week, error) {
	year, number, err := domain.ParseLabel(label)
	if err != nil {
		return Week{}, fromCore(err, "failed to parse week label")
	}
	return c.Week(ctx, year, number)
}

// Next returns the week after w
func (c *Client) Next(ctx context.Context, w Week) (Week, error) {
	if err := c.checkClosed(); err != nil {
		return Week{}, err
	}
	next, err := c.service.Next(ctx, w, c.config.Policy)
	if err != nil {
		return Week{}, fromCore(err, "failed to step to next week")
	}
	return next, nil
}

// Previous returns the week before w
func (c *Client) Previous(ctx context.Context, w Week) (Week, error) {
	if err := c.checkClosed(); err != nil {
		return Week{}, err
	}
	prev, err := c.service.Previous(ctx, w, c.config.Policy)
	if err != nil {
		return Week{}, fromCore(err, "failed to step to previous week")
	}
	return prev, nil
}

// Year lists every week of year
func (c *Client) Year(ctx context.Context, year int) (YearCalendar, error) {
	if err := c.checkClosed(); err != nil {
		return YearCalendar{}, err
	}

	count, err := c.service.WeeksInYear(ctx, year, c.config.Policy)
	if err != nil {
		return YearCalendar{}, fromCore(err, "failed to count weeks")
	}

	cal := YearCalendar{
		Year:   year,
		Policy: c.config.Policy.String(),
		Weeks:  make([]Week, 0, count),
	}
	for n := 1; n <= count; n++ {
		w, err := c.service.FromNumber(ctx, year, n, c.config.Policy)
		if err != nil {
			return YearCalendar{}, fromCore(err, "failed to resolve week")
		}
		cal.Weeks = append(cal.Weeks, w)
	}
	return cal, nil
}

// Close releases caches opened by the client. Caches passed through
// WithCache stay open; their owner closes them.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return closeAll(c.config.closers)
}

func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

func closeAll(closers []func() error) error {
	var errs []error
	for _, fn := range closers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
