// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Accepts the date and timestamp layouts users type on the command line and in URLs

package time

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	coreerrors "weekcal-api/core/errors"
)

// Layouts accepted for user supplied dates, most specific first
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"20060102",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// Layouts without a zone are read as UTC. It returns the zero time when no
// layout matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// ParseDate parses a user supplied date. Besides the layouts above it accepts
// a Unix timestamp in seconds.
func ParseDate(field, value string) (time.Time, error) {
	if t := ParseFlexibleTime(value); !t.IsZero() {
		return t, nil
	}
	if secs, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil && len(strings.TrimSpace(value)) > 8 {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, &coreerrors.ValidationError{
		Field:   field,
		Message: fmt.Sprintf("unrecognised date %q (try 2006-01-02 or RFC 3339)", value),
	}
}

// ParseWithDefault attempts to parse a time string, returning a default if parsing fails
func ParseWithDefault(timeStr string, defaultTime time.Time) time.Time {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return parsed
	}
	return defaultTime
}
