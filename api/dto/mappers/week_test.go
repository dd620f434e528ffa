package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekcal-api/core/domain"
)

func week(t *testing.T, number, year int, start time.Time) domain.Week {
	t.Helper()
	w, err := domain.NewWeek(number, year, start, start.Add(domain.WeekLength-time.Millisecond))
	require.NoError(t, err)
	return w
}

func TestToWeekResponse(t *testing.T) {
	w := week(t, 1, 2023, time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC))

	resp := ToWeekResponse(w, domain.DefaultPolicy, domain.FormatShortPadded)

	assert.Equal(t, 1, resp.Number)
	assert.Equal(t, 2023, resp.Year)
	assert.Equal(t, w.Start(), resp.Start)
	assert.Equal(t, w.End(), resp.End)
	assert.Equal(t, "01-2023 (2023-01-02 ~ 2023-01-08)", resp.Label)
	assert.Equal(t, "Monday/first-four-day-week", resp.Policy)
	assert.Empty(t, resp.Previous)
	assert.Empty(t, resp.Next)
}

func TestToYearResponse(t *testing.T) {
	first := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	weeks := []domain.Week{
		week(t, 1, 2023, first),
		week(t, 2, 2023, first.AddDate(0, 0, 7)),
	}

	resp := ToYearResponse(2023, weeks, domain.DefaultPolicy, domain.FormatYearFirstLong)

	assert.Equal(t, 2023, resp.Year)
	assert.Equal(t, 2, resp.WeeksInYear)
	require.Len(t, resp.Weeks, 2)
	assert.Equal(t, "2023-01", resp.Weeks[0].Label)
	assert.Equal(t, "2023-02", resp.Weeks[1].Label)
}

func TestToYearResponse_Empty(t *testing.T) {
	resp := ToYearResponse(2023, nil, domain.DefaultPolicy, domain.FormatShort)

	assert.NotNil(t, resp.Weeks)
	assert.Empty(t, resp.Weeks)
}
