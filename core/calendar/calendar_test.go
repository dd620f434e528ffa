package calendar

import (
	"testing"
	"time"

	"weekcal-api/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sundayFirstDay = domain.Policy{FirstDayOfWeek: time.Sunday, Rule: domain.FirstDay}
	mondayFullWeek = domain.Policy{FirstDayOfWeek: time.Monday, Rule: domain.FirstFullWeek}
)

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		policy domain.Policy
		want   int
	}{
		{"mid year", utc(2023, time.July, 31), domain.DefaultPolicy, 31},
		{"sunday before week 1 belongs to previous year", utc(2023, time.January, 1), domain.DefaultPolicy, 52},
		{"first monday of 2023", utc(2023, time.January, 2), domain.DefaultPolicy, 1},
		{"last monday of 2020", utc(2020, time.December, 28), domain.DefaultPolicy, 53},
		{"new year's day 2021 is in week 53", utc(2021, time.January, 1), domain.DefaultPolicy, 53},
		{"first monday of 2021", utc(2021, time.January, 4), domain.DefaultPolicy, 1},
		{"end of december never wraps to 1", utc(2024, time.December, 30), domain.DefaultPolicy, 53},
		{"january 1st 2025 is week 1", utc(2025, time.January, 1), domain.DefaultPolicy, 1},
		{"time of day is ignored", time.Date(2023, time.July, 31, 23, 59, 59, 0, time.UTC), domain.DefaultPolicy, 31},
		{"first day rule starts at week 1", utc(2023, time.January, 1), sundayFirstDay, 1},
		{"first day rule saturday", utc(2023, time.January, 7), sundayFirstDay, 1},
		{"first day rule next sunday", utc(2023, time.January, 8), sundayFirstDay, 2},
		{"first day rule reaches 54", utc(2000, time.December, 31), sundayFirstDay, 54},
		{"full week rule partial week", utc(2023, time.January, 1), mondayFullWeek, 52},
		{"full week rule first monday", utc(2023, time.January, 2), mondayFullWeek, 1},
		{"full week rule 2021", utc(2021, time.January, 4), mondayFullWeek, 1},
		{"full week rule days before first monday", utc(2021, time.January, 3), mondayFullWeek, 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekOf(tt.date, tt.policy))
		})
	}
}

func TestWeekOf_ConvertsToUTC(t *testing.T) {
	rome := time.FixedZone("CET", 3600)
	// 00:30 on January 4th in Rome is still January 3rd in UTC
	local := time.Date(2021, time.January, 4, 0, 30, 0, 0, rome)

	assert.Equal(t, 53, WeekOf(local, domain.DefaultPolicy))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		number    int
		policy    domain.Policy
		wantStart time.Time
	}{
		{"week 31 of 2023", 2023, 31, domain.DefaultPolicy, utc(2023, time.July, 31)},
		{"week 1 of 2023", 2023, 1, domain.DefaultPolicy, utc(2023, time.January, 2)},
		{"week 53 of 2020", 2020, 53, domain.DefaultPolicy, utc(2020, time.December, 28)},
		{"partial week 1 aligns to monday", 2025, 1, domain.DefaultPolicy, utc(2024, time.December, 30)},
		{"week 2 of 2025", 2025, 2, domain.DefaultPolicy, utc(2025, time.January, 6)},
		{"december tail counts as week 53", 2024, 53, domain.DefaultPolicy, utc(2024, time.December, 30)},
		{"first day rule on a sunday", 2023, 1, sundayFirstDay, utc(2023, time.January, 1)},
		{"first day rule aligns back a year", 2022, 1, sundayFirstDay, utc(2021, time.December, 26)},
		{"full week rule", 2021, 1, mondayFullWeek, utc(2021, time.January, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := Resolve(tt.year, tt.number, tt.policy, true)
			require.True(t, ok)
			assert.Equal(t, tt.wantStart, span.Start)
			assert.Equal(t, tt.wantStart.Add(domain.WeekLength-time.Millisecond), span.End)
		})
	}
}

func TestResolve_Scenario2023Week31(t *testing.T) {
	span, ok := Resolve(2023, 31, domain.DefaultPolicy, true)

	require.True(t, ok)
	assert.Equal(t, "2023-07-31T00:00:00.000Z", span.Start.Format("2006-01-02T15:04:05.000Z07:00"))
	assert.Equal(t, "2023-08-06T23:59:59.999Z", span.End.Format("2006-01-02T15:04:05.000Z07:00"))
}

func TestResolve_StrictYearReportsMissingWeek(t *testing.T) {
	_, ok := Resolve(2023, 53, domain.DefaultPolicy, true)
	assert.False(t, ok, "2023 has 52 weeks")

	_, ok = Resolve(2021, 53, domain.DefaultPolicy, true)
	assert.False(t, ok, "2021 has 52 weeks")
}

func TestResolve_IsBounded(t *testing.T) {
	_, ok := Resolve(2023, 60, domain.DefaultPolicy, false)
	assert.False(t, ok)

	_, ok = Resolve(2023, 1000, domain.DefaultPolicy, false)
	assert.False(t, ok)
}

func TestResolve_SpanInvariantsAcrossPolicies(t *testing.T) {
	policies := []domain.Policy{domain.DefaultPolicy, sundayFirstDay, mondayFullWeek,
		{FirstDayOfWeek: time.Saturday, Rule: domain.FirstFourDayWeek}}

	for _, p := range policies {
		for year := 1995; year <= 2035; year++ {
			for n := domain.MinWeekNumber; n <= domain.MaxWeekNumber; n++ {
				span, ok := Resolve(year, n, p, true)
				if !ok {
					continue
				}
				require.Equal(t, p.FirstDayOfWeek, span.Start.Weekday(), "%s %d-%d", p, year, n)
				require.Equal(t, domain.WeekLength-time.Millisecond, span.End.Sub(span.Start))

				firstInYear := span.Start
				if firstInYear.Year() < year {
					firstInYear = utc(year, time.January, 1)
				}
				require.Equal(t, n, WeekOf(firstInYear, p), "%s %d-%d", p, year, n)
			}
		}
	}
}

func TestResolve_EveryYearTerminates(t *testing.T) {
	for year := domain.MinYear; year <= domain.MaxYear; year++ {
		weeks := WeeksIn(year, domain.DefaultPolicy)
		require.Contains(t, []int{52, 53}, weeks, "year %d", year)

		span, ok := Resolve(year, weeks, domain.DefaultPolicy, true)
		require.True(t, ok, "year %d", year)
		require.Equal(t, year, span.Start.Year())

		_, ok = Resolve(year, weeks+1, domain.DefaultPolicy, true)
		require.False(t, ok, "year %d", year)
	}
}

func TestWeeksIn(t *testing.T) {
	assert.Equal(t, 52, WeeksIn(2023, domain.DefaultPolicy))
	assert.Equal(t, 53, WeeksIn(2020, domain.DefaultPolicy))
	assert.Equal(t, 53, WeeksIn(2000, sundayFirstDay), "week 54 is capped")
}

func TestStartOfWeek(t *testing.T) {
	wednesday := time.Date(2023, time.August, 2, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, utc(2023, time.July, 31), StartOfWeek(wednesday, time.Monday))
	assert.Equal(t, utc(2023, time.July, 30), StartOfWeek(wednesday, time.Sunday))
	assert.Equal(t, utc(2023, time.August, 2), StartOfWeek(wednesday, time.Wednesday))
}

func TestPolicyForLocale(t *testing.T) {
	tests := []struct {
		tag  string
		want domain.Policy
	}{
		{"it-IT", domain.DefaultPolicy},
		{"de", domain.DefaultPolicy},
		{"en-GB", domain.DefaultPolicy},
		{"en-US", sundayFirstDay},
		{"ja", sundayFirstDay},
		{"ar-EG", domain.Policy{FirstDayOfWeek: time.Saturday, Rule: domain.FirstDay}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := PolicyForLocale(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := PolicyForLocale("not a locale!")
	assert.Error(t, err)
}
