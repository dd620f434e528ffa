// ABOUTME: Week numbering policy: which day starts a week and which rule picks week 1
// ABOUTME: Provides parsing helpers and a stable key used by caches

package domain

import (
	"fmt"
	"strings"
	"time"

	coreerrors "weekcal-api/core/errors"
)

// Rule decides which week of a year is week 1
type Rule int

const (
	// FirstDay makes the week containing January 1st week 1
	FirstDay Rule = iota

	// FirstFourDayWeek makes the first week with at least four days in the new year week 1
	FirstFourDayWeek

	// FirstFullWeek makes the first week lying entirely in the new year week 1
	FirstFullWeek
)

var ruleNames = map[Rule]string{
	FirstDay:         "first-day",
	FirstFourDayWeek: "first-four-day-week",
	FirstFullWeek:    "first-full-week",
}

// String returns the canonical rule name
func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// MinDays returns how many days of the new year week 1 must contain
func (r Rule) MinDays() int {
	switch r {
	case FirstFourDayWeek:
		return 4
	case FirstFullWeek:
		return 7
	default:
		return 1
	}
}

// Valid reports whether r is one of the known rules
func (r Rule) Valid() bool {
	_, ok := ruleNames[r]
	return ok
}

// ParseRule accepts the canonical names plus a few short aliases
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first-day", "firstday", "first_day", "day", "1":
		return FirstDay, nil
	case "first-four-day-week", "firstfourdayweek", "first_four_day_week", "four", "4", "iso":
		return FirstFourDayWeek, nil
	case "first-full-week", "firstfullweek", "first_full_week", "full", "7":
		return FirstFullWeek, nil
	}
	return 0, &coreerrors.ValidationError{
		Field:   "rule",
		Message: fmt.Sprintf("unknown week rule %q (use first-day, first-four-day-week or first-full-week)", s),
	}
}

// ParseWeekday accepts English day names or their three-letter abbreviations
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, &coreerrors.ValidationError{
		Field:   "first_day",
		Message: fmt.Sprintf("unknown day of week %q", s),
	}
}

// Policy is the pair governing week numbering
type Policy struct {
	FirstDayOfWeek time.Weekday
	Rule           Rule
}

// DefaultPolicy is used whenever a caller does not supply one.
// Monday with the four-day rule matches most European locales.
var DefaultPolicy = Policy{
	FirstDayOfWeek: time.Monday,
	Rule:           FirstFourDayWeek,
}

// Validate checks that both halves of the policy are known values
func (p Policy) Validate() error {
	if p.FirstDayOfWeek < time.Sunday || p.FirstDayOfWeek > time.Saturday {
		return &coreerrors.ValidationError{
			Field:   "first_day",
			Message: fmt.Sprintf("invalid day of week %d", int(p.FirstDayOfWeek)),
		}
	}
	if !p.Rule.Valid() {
		return &coreerrors.ValidationError{
			Field:   "rule",
			Message: fmt.Sprintf("invalid week rule %d", int(p.Rule)),
		}
	}
	return nil
}

// Key is a short stable identifier such as "mon-4", used in cache keys
func (p Policy) Key() string {
	return fmt.Sprintf("%s-%d", strings.ToLower(p.FirstDayOfWeek.String()[:3]), p.Rule.MinDays())
}

// String returns a human readable form such as "Monday/first-four-day-week"
func (p Policy) String() string {
	return p.FirstDayOfWeek.String() + "/" + p.Rule.String()
}

// ParsePolicy builds a policy from a day name and a rule name. Empty values
// keep the corresponding field of base.
func ParsePolicy(base Policy, firstDay, rule string) (Policy, error) {
	p := base
	if strings.TrimSpace(firstDay) != "" {
		d, err := ParseWeekday(firstDay)
		if err != nil {
			return Policy{}, err
		}
		p.FirstDayOfWeek = d
	}
	if strings.TrimSpace(rule) != "" {
		r, err := ParseRule(rule)
		if err != nil {
			return Policy{}, err
		}
		p.Rule = r
	}
	return p, nil
}
