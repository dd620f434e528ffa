// ABOUTME: Public types for the weeks library API
// ABOUTME: Re-exports the core week values so embedders need a single import

package weeks

import (
	"weekcal-api/core/domain"
)

// Week is a numbered calendar week of a year with its UTC span
type Week = domain.Week

// Span is the 7-day interval a week covers
type Span = domain.Span

// Policy picks the first day of week and the rule deciding week 1
type Policy = domain.Policy

// Rule decides which days of January belong to week 1
type Rule = domain.Rule

// Week 1 rules
const (
	FirstDay         = domain.FirstDay
	FirstFourDayWeek = domain.FirstFourDayWeek
	FirstFullWeek    = domain.FirstFullWeek
)

// DefaultPolicy is Monday-first with the four-day rule
var DefaultPolicy = domain.DefaultPolicy

// YearCalendar lists every week of a year in order
type YearCalendar struct {
	Year   int    `json:"year"`
	Policy string `json:"policy"`
	Weeks  []Week `json:"weeks"`
}

// Len returns the number of weeks in the year (52 or 53)
func (y YearCalendar) Len() int {
	return len(y.Weeks)
}
