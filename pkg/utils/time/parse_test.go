package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "weekcal-api/core/errors"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2023-07-31", time.Date(2023, time.July, 31, 0, 0, 0, 0, time.UTC)},
		{" 2023-07-31 ", time.Date(2023, time.July, 31, 0, 0, 0, 0, time.UTC)},
		{"2023/07/31", time.Date(2023, time.July, 31, 0, 0, 0, 0, time.UTC)},
		{"20230731", time.Date(2023, time.July, 31, 0, 0, 0, 0, time.UTC)},
		{"2023-07-31T10:30:00Z", time.Date(2023, time.July, 31, 10, 30, 0, 0, time.UTC)},
		{"2023-07-31 10:30:00", time.Date(2023, time.July, 31, 10, 30, 0, 0, time.UTC)},
		{"31 Jul 2023", time.Date(2023, time.July, 31, 0, 0, 0, 0, time.UTC)},
		{"July 31, 2023", time.Date(2023, time.July, 31, 0, 0, 0, 0, time.UTC)},
		{"1690761600", time.Date(2023, time.July, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate("date", tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseDate_KeepsOffset(t *testing.T) {
	got, err := ParseDate("date", "2023-01-02T08:00:00+09:00")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, time.January, 1, 23, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2023-13-45", "12"} {
		_, err := ParseDate("date", input)
		require.Error(t, err, input)
		assert.True(t, coreerrors.IsValidation(err), input)
	}
}

func TestParseWithDefault(t *testing.T) {
	fallback := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, fallback, ParseWithDefault("garbage", fallback))
	assert.Equal(t, 2023, ParseWithDefault("2023-07-31", fallback).Year())
}
