// ABOUTME: Service interfaces for the core calendar logic
// ABOUTME: Defines contracts for services used by the API, CLI and library layers

package interfaces

import (
	"context"
	"time"

	"weekcal-api/core/domain"
)

// WeekService maps dates to weeks and weeks to date ranges
type WeekService interface {
	// WeekOf returns the week number of date in its own year
	WeekOf(date time.Time, policy domain.Policy) int

	// ResolveRange returns the span of week number of year. It fails with
	// an OutOfRangeError when the year has no such week.
	ResolveRange(ctx context.Context, year, number int, policy domain.Policy) (domain.Span, error)

	// FromNumber builds the week (year, number), validating both
	FromNumber(ctx context.Context, year, number int, policy domain.Policy) (domain.Week, error)

	// FromDate returns the week containing date. It never fails.
	FromDate(ctx context.Context, date time.Time, policy domain.Policy) domain.Week

	// Current returns the week containing the clock's current instant
	Current(ctx context.Context, policy domain.Policy) domain.Week

	// WeeksInYear returns how many weeks year has (52 or 53)
	WeeksInYear(ctx context.Context, year int, policy domain.Policy) (int, error)

	// Next and Previous step to the adjacent week, crossing years as needed
	Next(ctx context.Context, week domain.Week, policy domain.Policy) (domain.Week, error)
	Previous(ctx context.Context, week domain.Week, policy domain.Policy) (domain.Week, error)
}
