// ABOUTME: Week range resolver: finds the UTC span of a (year, week number) pair
// ABOUTME: Walks forward from January 1st with an optional year-boundary guard

package calendar

import (
	"time"

	"weekcal-api/core/domain"
)

// maxAdvanceDays bounds a single search. Week 53 starts at most 6 days
// (before week 1) plus 52 weeks after January 1st, i.e. day 370.
const maxAdvanceDays = 371

// Resolve locates week weekNumber of year under p.
//
// The walk starts at January 1st 00:00 UTC, moves day by day to the first
// day numbered 1, then on to the first day numbered weekNumber, stepping a
// whole week at a time once it stands on the policy's first day of week.
// With strictYear set, leaving the calendar year ends the search
// unsuccessfully; that is how callers learn that a year has no such week.
//
// The returned span starts on the policy's first day of week, so a partial
// week 1 is reported as the full calendar week that contains it.
//
// weekNumber is not range checked here; values below 1 resolve to week 1
// and values no year reaches report false.
func Resolve(year, weekNumber int, p domain.Policy, strictYear bool) (domain.Span, bool) {
	day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	current := WeekOf(day, p)
	advanced := 0

	for current != 1 {
		day = day.AddDate(0, 0, 1)
		advanced++
		current = WeekOf(day, p)
	}

	for current < weekNumber {
		step := 1
		if day.Weekday() == p.FirstDayOfWeek {
			step = 7
		}

		day = day.AddDate(0, 0, step)
		advanced += step
		if strictYear && day.Year() != year {
			return domain.Span{}, false
		}
		if advanced > maxAdvanceDays {
			return domain.Span{}, false
		}

		current = WeekOf(day, p)
	}

	if weekNumber >= 1 && current != weekNumber {
		return domain.Span{}, false
	}

	return domain.NewSpan(StartOfWeek(day, p.FirstDayOfWeek)), true
}

// StartOfWeek returns midnight UTC of the first day of the week holding t
func StartOfWeek(t time.Time, first time.Weekday) time.Time {
	t = t.UTC()
	back := (int(t.Weekday()) - int(first) + 7) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-back, 0, 0, 0, 0, time.UTC)
}

// WeeksIn returns the highest week number year reaches under p, capped at
// domain.MaxWeekNumber.
func WeeksIn(year int, p domain.Policy) int {
	for n := domain.MaxWeekNumber; n > domain.MinWeekNumber; n-- {
		if _, ok := Resolve(year, n, p, true); ok {
			return n
		}
	}
	return domain.MinWeekNumber
}
