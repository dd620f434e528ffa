// ABOUTME: Request DTOs for week-related API endpoints
// ABOUTME: Shared query parameters that select the numbering policy and output label format

package requests

import (
	"weekcal-api/core/calendar"
	"weekcal-api/core/domain"
)

// PolicyQuery is embedded by every week operation input
type PolicyQuery struct {
	// Locale picks the base policy from a BCP 47 tag
	Locale string `query:"locale" doc:"BCP 47 locale whose week convention to use, e.g. en-US or it-IT" example:"it-IT"`

	// FirstDay overrides the first day of the week
	FirstDay string `query:"first_day" doc:"First day of the week (monday, sun, ...)" example:"monday"`

	// Rule overrides the rule deciding which week is week 1
	Rule string `query:"rule" doc:"Week-one rule: first-day, first-four-day-week (iso) or first-full-week" example:"first-four-day-week"`

	// Format selects the label token
	Format string `query:"format" enum:"F,S,s,i,I" default:"S" doc:"Label format: F full, S short with range, s number-year, i year-number, I year-number zero padded"`
}

// Policy resolves the query against the server default. A locale replaces
// the default; first_day and rule then override single fields.
func (q PolicyQuery) Policy(base domain.Policy) (domain.Policy, error) {
	if q.Locale != "" {
		p, err := calendar.PolicyForLocale(q.Locale)
		if err != nil {
			return domain.Policy{}, err
		}
		base = p
	}
	return domain.ParsePolicy(base, q.FirstDay, q.Rule)
}

// LabelFormat returns the requested token, "S" when unset
func (q PolicyQuery) LabelFormat() string {
	if q.Format == "" {
		return domain.FormatShortPadded
	}
	return q.Format
}
