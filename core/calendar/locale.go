package calendar

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"weekcal-api/core/domain"
	coreerrors "weekcal-api/core/errors"
)

// Regions whose calendars number weeks from Sunday with week 1 holding
// January 1st. Anything not listed here or in saturdayRegions gets the
// Monday / four-day default.
var sundayRegions = map[string]bool{
	"US": true, "CA": true, "MX": true, "BR": true, "JP": true, "KR": true,
	"CN": true, "TW": true, "HK": true, "IL": true, "IN": true, "PH": true,
	"ZA": true, "SA": true, "PE": true, "CO": true, "AR": true,
}

var saturdayRegions = map[string]bool{
	"AE": true, "EG": true, "IR": true, "IQ": true, "JO": true, "KW": true,
	"LY": true, "OM": true, "QA": true, "SY": true, "DZ": true, "BH": true,
}

// PolicyForLocale derives a week numbering policy from a BCP 47 tag such as
// "it-IT" or "en-US". Tags without an explicit region use the region the
// language most likely implies ("ja" resolves to JP).
func PolicyForLocale(tag string) (domain.Policy, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return domain.Policy{}, &coreerrors.ValidationError{
			Field:   "locale",
			Message: fmt.Sprintf("invalid locale %q: %v", tag, err),
		}
	}

	region, _ := t.Region()
	code := region.String()

	switch {
	case sundayRegions[code]:
		return domain.Policy{FirstDayOfWeek: time.Sunday, Rule: domain.FirstDay}, nil
	case saturdayRegions[code]:
		return domain.Policy{FirstDayOfWeek: time.Saturday, Rule: domain.FirstDay}, nil
	}
	return domain.DefaultPolicy, nil
}
