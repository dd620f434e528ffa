// ABOUTME: Week service derives Week values from dates and from (year, number) pairs
// ABOUTME: Memoises resolved ranges in the injected cache and logs through the injected logger

package week

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"weekcal-api/core/calendar"
	"weekcal-api/core/domain"
	coreerrors "weekcal-api/core/errors"
	"weekcal-api/core/interfaces"
)

// DefaultCacheTTL is how long a resolved range stays cached
const DefaultCacheTTL = 7 * 24 * time.Hour

// Service implements interfaces.WeekService
type Service struct {
	deps     interfaces.Dependencies
	cacheTTL time.Duration
}

var _ interfaces.WeekService = (*Service)(nil)

// cachedSpan is the cache record for one (policy, year, number) lookup.
// Misses are cached too, so "2023 has no week 53" is remembered.
type cachedSpan struct {
	Found bool      `json:"found"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewService creates a week service. A nil cache disables memoisation,
// a nil clock falls back to the system clock.
func NewService(deps interfaces.Dependencies, cacheTTL time.Duration) *Service {
	if deps.Clock == nil {
		deps.Clock = interfaces.SystemClock
	}
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	return &Service{
		deps:     deps,
		cacheTTL: cacheTTL,
	}
}

// WeekOf returns the week number of date in its own year
func (s *Service) WeekOf(date time.Time, policy domain.Policy) int {
	return calendar.WeekOf(date, policy)
}

// ResolveRange returns the span of the given week
func (s *Service) ResolveRange(ctx context.Context, year, number int, policy domain.Policy) (domain.Span, error) {
	if err := domain.Validate(number, year); err != nil {
		return domain.Span{}, err
	}
	if err := policy.Validate(); err != nil {
		return domain.Span{}, err
	}

	span, ok := s.resolve(ctx, year, number, policy)
	if !ok {
		return domain.Span{}, coreerrors.NewOutOfRange("week_number", number,
			"the year %d does not have %d weeks", year, number)
	}
	return span, nil
}

// FromNumber builds week number of year
func (s *Service) FromNumber(ctx context.Context, year, number int, policy domain.Policy) (domain.Week, error) {
	span, err := s.ResolveRange(ctx, year, number, policy)
	if err != nil {
		return domain.Week{}, err
	}
	return domain.NewWeek(number, year, span.Start, span.End)
}

// FromDate returns the week containing date.
//
// The number computed for date is looked up in date's own year, then the
// previous one (early January days that still belong to last year's final
// week), then, without the year guard, the next one. A candidate only
// counts when its span holds date.
func (s *Service) FromDate(ctx context.Context, date time.Time, policy domain.Policy) domain.Week {
	date = date.UTC()
	number := calendar.WeekOf(date, policy)
	year := date.Year()

	if number > domain.MaxWeekNumber {
		// a one-day week 54 under FirstDay is the leading edge of next year's week 1
		span, ok := s.resolve(ctx, year+1, 1, policy)
		if !ok || !span.Contains(date) {
			span = domain.NewSpan(calendar.StartOfWeek(date, policy.FirstDayOfWeek))
		}
		return domain.DerivedWeek(1, year+1, span)
	}

	for _, candidate := range []int{year, year - 1} {
		if span, ok := s.resolve(ctx, candidate, number, policy); ok && span.Contains(date) {
			return domain.DerivedWeek(number, candidate, span)
		}
	}

	span, ok := calendar.Resolve(year+1, number, policy, false)
	if !ok || !span.Contains(date) {
		s.deps.Logger.Warn("No candidate year holds date, using its calendar week", map[string]interface{}{
			"date":   date.Format(time.RFC3339),
			"week":   number,
			"policy": policy.String(),
		})
		span = domain.NewSpan(calendar.StartOfWeek(date, policy.FirstDayOfWeek))
	}
	return domain.DerivedWeek(number, year+1, span)
}

// Current returns the week holding the clock's current instant
func (s *Service) Current(ctx context.Context, policy domain.Policy) domain.Week {
	return s.FromDate(ctx, s.deps.Clock.Now(), policy)
}

// WeeksInYear returns 52 or 53
func (s *Service) WeeksInYear(ctx context.Context, year int, policy domain.Policy) (int, error) {
	if err := domain.Validate(domain.MinWeekNumber, year); err != nil {
		return 0, err
	}
	if err := policy.Validate(); err != nil {
		return 0, err
	}

	for n := domain.MaxWeekNumber; n > domain.MinWeekNumber; n-- {
		if _, ok := s.resolve(ctx, year, n, policy); ok {
			return n, nil
		}
	}
	return domain.MinWeekNumber, nil
}

// Next returns the week after w
func (s *Service) Next(ctx context.Context, w domain.Week, policy domain.Policy) (domain.Week, error) {
	weeks, err := s.WeeksInYear(ctx, w.Year(), policy)
	if err != nil {
		return domain.Week{}, err
	}
	if w.Number() < weeks {
		return s.FromNumber(ctx, w.Year(), w.Number()+1, policy)
	}
	return s.FromNumber(ctx, w.Year()+1, domain.MinWeekNumber, policy)
}

// Previous returns the week before w
func (s *Service) Previous(ctx context.Context, w domain.Week, policy domain.Policy) (domain.Week, error) {
	if w.Number() > domain.MinWeekNumber {
		return s.FromNumber(ctx, w.Year(), w.Number()-1, policy)
	}
	weeks, err := s.WeeksInYear(ctx, w.Year()-1, policy)
	if err != nil {
		return domain.Week{}, err
	}
	return s.FromNumber(ctx, w.Year()-1, weeks, policy)
}

// resolve is calendar.Resolve in strict mode behind the cache
func (s *Service) resolve(ctx context.Context, year, number int, policy domain.Policy) (domain.Span, bool) {
	key := cacheKey(year, number, policy)

	if s.deps.Cache != nil {
		data, err := s.deps.Cache.Get(ctx, key)
		switch {
		case err == nil:
			var cached cachedSpan
			if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
				s.deps.Logger.Debug("Week range cache hit", map[string]interface{}{
					"key":   key,
					"found": cached.Found,
				})
				return domain.Span{Start: cached.Start, End: cached.End}, cached.Found
			}
			s.deps.Logger.Warn("Discarding unreadable week range cache entry", map[string]interface{}{
				"key": key,
			})
		case !errors.Is(err, interfaces.ErrCacheMiss):
			s.deps.Logger.Warn("Week range cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}

	span, ok := calendar.Resolve(year, number, policy, true)
	s.deps.Logger.Debug("Resolved week range", map[string]interface{}{
		"year":   year,
		"week":   number,
		"policy": policy.String(),
		"found":  ok,
	})

	if s.deps.Cache != nil {
		data, err := json.Marshal(cachedSpan{Found: ok, Start: span.Start, End: span.End})
		if err == nil {
			err = s.deps.Cache.Set(ctx, key, data, s.cacheTTL)
		}
		if err != nil {
			s.deps.Logger.Warn("Week range cache write failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}

	return span, ok
}

func cacheKey(year, number int, policy domain.Policy) string {
	return fmt.Sprintf("weeks:span:%s:%d:%d", policy.Key(), year, number)
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
