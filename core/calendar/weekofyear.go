// ABOUTME: Week-of-year primitive: maps a calendar date to its week number under a policy
// ABOUTME: Follows the calendar week rules used by locale-aware calendars

package calendar

import (
	"time"

	"weekcal-api/core/domain"
)

// WeekOf returns the 1-based week number of t within its own year.
//
// With FirstDay, week 1 is the week holding January 1st, so a leap year
// that starts on the last day of the week reaches week 54 on December 31st.
// With FirstFourDayWeek and FirstFullWeek, days before week 1 report the
// previous year's last week (52 or 53). Numbering never wraps forward to 1
// at the end of December; deciding which year a number belongs to is the
// resolver's job.
//
// t is read in UTC.
func WeekOf(t time.Time, p domain.Policy) int {
	t = t.UTC()
	if p.Rule == domain.FirstDay {
		return firstDayWeek(t, p.FirstDayOfWeek)
	}
	return fullDaysWeek(t, p.FirstDayOfWeek, p.Rule.MinDays())
}

func firstDayWeek(t time.Time, first time.Weekday) int {
	dayOfYear := t.YearDay() - 1
	offset := (int(jan1Weekday(t.Year())) - int(first) + 7) % 7
	return (dayOfYear+offset)/7 + 1
}

func fullDaysWeek(t time.Time, first time.Weekday, fullDays int) int {
	dayOfYear := t.YearDay() - 1

	// days from January 1st to the first occurrence of the first day of week
	offset := (int(first) - int(jan1Weekday(t.Year())) + 7) % 7
	if offset != 0 && offset >= fullDays {
		// the partial week before it is long enough to count as week 1
		offset -= 7
	}

	day := dayOfYear - offset
	if day >= 0 {
		return day/7 + 1
	}

	// before week 1: the date sits in the previous year's last week
	return fullDaysWeek(time.Date(t.Year()-1, time.December, 31, 0, 0, 0, 0, time.UTC), first, fullDays)
}

func jan1Weekday(year int) time.Weekday {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday()
}
