// ABOUTME: Week domain model: a numbered calendar week of a year and its UTC span
// ABOUTME: Provides validation, ordering, equality, and the fixed string layouts

package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	coreerrors "weekcal-api/core/errors"
)

const (
	MinWeekNumber = 1
	MaxWeekNumber = 53
	MinYear       = 2
	MaxYear       = 9999

	// WeekLength is the duration of every week span
	WeekLength = 7 * 24 * time.Hour

	dateLayout = "2006-01-02"
)

// Format tokens understood by Week.Format
const (
	FormatFull          = "F"
	FormatShortPadded   = "S"
	FormatShort         = "s"
	FormatYearFirst     = "i"
	FormatYearFirstLong = "I"
)

// Span is a 7-day interval: Start is a UTC midnight and End is one
// millisecond before the following week begins.
type Span struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewSpan returns the week-long span beginning at start
func NewSpan(start time.Time) Span {
	start = start.UTC()
	return Span{
		Start: start,
		End:   start.Add(WeekLength - time.Millisecond),
	}
}

// Contains reports whether t falls inside the span, bounds included
func (s Span) Contains(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End)
}

// IsZero reports whether the span was never set
func (s Span) IsZero() bool {
	return s.Start.IsZero() && s.End.IsZero()
}

// Week is an immutable (number, year, start, end) value.
// Two weeks are equal when number and year match; the span is derived.
type Week struct {
	number int
	year   int
	start  time.Time
	end    time.Time
}

// Validate is the single bounds check shared by every Week constructor
func Validate(number, year int) error {
	if number < MinWeekNumber || number > MaxWeekNumber {
		return coreerrors.NewOutOfRange("week", number, "provide value between %d and %d", MinWeekNumber, MaxWeekNumber)
	}
	if year < MinYear || year > MaxYear {
		return coreerrors.NewOutOfRange("year", year, "provide value between %d and %d", MinYear, MaxYear)
	}
	return nil
}

// NewWeek validates number and year and stores the four fields verbatim.
// Consistency between the span and the number is the caller's concern.
func NewWeek(number, year int, start, end time.Time) (Week, error) {
	if err := Validate(number, year); err != nil {
		return Week{}, err
	}
	return Week{
		number: number,
		year:   year,
		start:  start.UTC(),
		end:    end.UTC(),
	}, nil
}

// DerivedWeek builds a week from a resolver result without bounds checks.
// It exists for date lookups, which are total even for dates whose week
// belongs to a year outside [MinYear, MaxYear].
func DerivedWeek(number, year int, span Span) Week {
	return Week{
		number: number,
		year:   year,
		start:  span.Start.UTC(),
		end:    span.End.UTC(),
	}
}

// Number returns the week number
func (w Week) Number() int { return w.number }

// Year returns the year the week is numbered in
func (w Week) Year() int { return w.year }

// Start returns the first instant of the week
func (w Week) Start() time.Time { return w.start }

// End returns the last millisecond of the week
func (w Week) End() time.Time { return w.end }

func (w Week) Span() Span {
	return Span{Start: w.start, End: w.end}
}

func (w Week) IsZero() bool {
	return w.number == 0 && w.year == 0
}

func (w Week) Contains(t time.Time) bool {
	return w.Span().Contains(t)
}

// Equal compares number and year only
func (w Week) Equal(other Week) bool {
	return w.number == other.number && w.year == other.year
}

// Compare orders weeks chronologically: by year, then by number.
// It returns -1, 0 or +1.
func (w Week) Compare(other Week) int {
	switch {
	case w.year < other.year:
		return -1
	case w.year > other.year:
		return 1
	case w.number < other.number:
		return -1
	case w.number > other.number:
		return 1
	}
	return 0
}

func (w Week) Before(other Week) bool { return w.Compare(other) < 0 }
func (w Week) After(other Week) bool { return w.Compare(other) > 0 }

// String uses the full descriptive layout
func (w Week) String() string {
	return w.Format(FormatFull)
}

// Format renders the week with one of the layout tokens. Unknown tokens
// fall back to the full layout.
//
//	s  1-2023
//	i  2023-1
//	I  2023-01
//	S  01-2023 (2023-01-02 ~ 2023-01-08)
//	F  Week 1-2023 - From '2023-01-02' To '2023-01-08'
func (w Week) Format(token string) string {
	switch token {
	case FormatShort:
		return fmt.Sprintf("%d-%d", w.number, w.year)
	case FormatYearFirst:
		return fmt.Sprintf("%d-%d", w.year, w.number)
	case FormatYearFirstLong:
		return fmt.Sprintf("%d-%02d", w.year, w.number)
	case FormatShortPadded:
		return fmt.Sprintf("%02d-%d (%s ~ %s)", w.number, w.year, w.start.Format(dateLayout), w.end.Format(dateLayout))
	default:
		return fmt.Sprintf("Week %d-%d - From '%s' To '%s'", w.number, w.year, w.start.Format(dateLayout), w.end.Format(dateLayout))
	}
}

type weekJSON struct {
	Number int       `json:"number"`
	Year   int       `json:"year"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// MarshalJSON implements json.Marshaler
func (w Week) MarshalJSON() ([]byte, error) {
	return json.Marshal(weekJSON{
		Number: w.number,
		Year:   w.year,
		Start:  w.start,
		End:    w.end,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Decoded values go through
// the same bounds check as NewWeek.
func (w *Week) UnmarshalJSON(data []byte) error {
	var raw weekJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := NewWeek(raw.Number, raw.Year, raw.Start, raw.End)
	if err != nil {
		return err
	}
	*w = decoded
	return nil
}

// ParseLabel reads the year-first labels produced by the "i" and "I"
// tokens, and the ISO style "2023-W05", returning year and week number.
func ParseLabel(label string) (year, number int, err error) {
	parts := strings.Split(strings.TrimSpace(label), "-")
	if len(parts) != 2 {
		return 0, 0, &coreerrors.ValidationError{
			Field:   "week",
			Message: fmt.Sprintf("invalid week label %q (expected YYYY-WW)", label),
		}
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, &coreerrors.ValidationError{
			Field:   "week",
			Message: fmt.Sprintf("invalid year in week label: %s", parts[0]),
		}
	}

	numberPart := strings.TrimPrefix(strings.ToUpper(parts[1]), "W")
	number, err = strconv.Atoi(numberPart)
	if err != nil {
		return 0, 0, &coreerrors.ValidationError{
			Field:   "week",
			Message: fmt.Sprintf("invalid week in week label: %s", parts[1]),
		}
	}

	if err := Validate(number, year); err != nil {
		return 0, 0, err
	}
	return year, number, nil
}
