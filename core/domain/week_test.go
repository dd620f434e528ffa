package domain

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	coreerrors "weekcal-api/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func firstWeek2023(t *testing.T) Week {
	t.Helper()
	span := NewSpan(utc(2023, time.January, 2))
	w, err := NewWeek(1, 2023, span.Start, span.End)
	require.NoError(t, err)
	return w
}

func TestNewSpan(t *testing.T) {
	span := NewSpan(utc(2023, time.July, 31))

	assert.Equal(t, utc(2023, time.July, 31), span.Start)
	assert.Equal(t, time.Date(2023, time.August, 6, 23, 59, 59, int(999*time.Millisecond), time.UTC), span.End)
	assert.Equal(t, WeekLength-time.Millisecond, span.End.Sub(span.Start))
}

func TestSpan_Contains(t *testing.T) {
	span := NewSpan(utc(2020, time.December, 28))

	assert.True(t, span.Contains(span.Start))
	assert.True(t, span.Contains(span.End))
	assert.True(t, span.Contains(utc(2021, time.January, 1)))
	assert.False(t, span.Contains(span.Start.Add(-time.Millisecond)))
	assert.False(t, span.Contains(span.End.Add(time.Millisecond)))
}

func TestNewWeek(t *testing.T) {
	start := utc(2023, time.July, 31)
	end := start.Add(WeekLength - time.Millisecond)

	tests := []struct {
		name      string
		number    int
		year      int
		wantField string
	}{
		{name: "valid week", number: 31, year: 2023},
		{name: "lowest week", number: 1, year: 2},
		{name: "highest week", number: 53, year: 9999},
		{name: "week zero", number: 0, year: 2023, wantField: "week"},
		{name: "week 54", number: 54, year: 2023, wantField: "week"},
		{name: "negative week", number: -1, year: 2023, wantField: "week"},
		{name: "year zero", number: 1, year: 0, wantField: "year"},
		{name: "year one", number: 1, year: 1, wantField: "year"},
		{name: "year 10000", number: 1, year: 10000, wantField: "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWeek(tt.number, tt.year, start, end)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.number, w.Number())
				assert.Equal(t, tt.year, w.Year())
				assert.Equal(t, start, w.Start())
				assert.Equal(t, end, w.End())
				return
			}

			require.Error(t, err)
			assert.True(t, coreerrors.IsOutOfRange(err))
			var rangeErr *coreerrors.OutOfRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.wantField, rangeErr.Field)
			assert.Contains(t, rangeErr.Message, "provide value between")
		})
	}
}

func TestWeek_Format(t *testing.T) {
	w := firstWeek2023(t)

	assert.Equal(t, "01-2023 (2023-01-02 ~ 2023-01-08)", w.Format("S"))
	assert.Equal(t, "1-2023", w.Format("s"))
	assert.Equal(t, "2023-1", w.Format("i"))
	assert.Equal(t, "2023-01", w.Format("I"))
	assert.Equal(t, "Week 1-2023 - From '2023-01-02' To '2023-01-08'", w.Format("F"))
	assert.Equal(t, w.Format("F"), w.Format("unknown"))
	assert.Equal(t, w.Format("F"), w.Format(""))
	assert.Equal(t, w.Format("F"), w.String())
}

func TestWeek_EqualIgnoresSpan(t *testing.T) {
	a := firstWeek2023(t)
	shifted := NewSpan(utc(2023, time.January, 1))
	b, err := NewWeek(1, 2023, shifted.Start, shifted.End)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))

	other, err := NewWeek(2, 2023, shifted.Start, shifted.End)
	require.NoError(t, err)
	assert.False(t, a.Equal(other))
}

func TestWeek_OrderingIsYearMajor(t *testing.T) {
	mk := func(number, year int) Week {
		w, err := NewWeek(number, year, time.Time{}, time.Time{})
		require.NoError(t, err)
		return w
	}

	w2019 := mk(1, 2019)
	w2020 := mk(1, 2020)
	w2020last := mk(53, 2020)
	w2021early := mk(2, 2021)

	assert.True(t, w2019.Before(w2020))
	assert.True(t, w2020.Before(w2020last))
	assert.True(t, w2020last.Before(w2021early), "a later year wins over a higher number")
	assert.True(t, w2021early.After(w2020last))
	assert.False(t, w2020.After(w2020))

	weeks := []Week{w2020last, w2021early, w2020, w2019}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })
	assert.Equal(t, []Week{w2019, w2020, w2020last, w2021early}, weeks)
}

func TestWeek_JSON(t *testing.T) {
	w := firstWeek2023(t)

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":1,"year":2023,"start":"2023-01-02T00:00:00Z","end":"2023-01-08T23:59:59.999Z"}`, string(data))

	var decoded Week
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, w.Equal(decoded))
	assert.Equal(t, w.Start(), decoded.Start())
	assert.Equal(t, w.End(), decoded.End())

	err = json.Unmarshal([]byte(`{"number":60,"year":2023}`), &decoded)
	assert.True(t, coreerrors.IsOutOfRange(err))
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label      string
		wantYear   int
		wantNumber int
		wantErr    bool
	}{
		{label: "2023-1", wantYear: 2023, wantNumber: 1},
		{label: "2023-01", wantYear: 2023, wantNumber: 1},
		{label: "2020-W53", wantYear: 2020, wantNumber: 53},
		{label: " 2024-w07 ", wantYear: 2024, wantNumber: 7},
		{label: "2023", wantErr: true},
		{label: "abcd-01", wantErr: true},
		{label: "2023-xx", wantErr: true},
		{label: "2023-54", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			year, number, err := ParseLabel(tt.label)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantNumber, number)
		})
	}
}
