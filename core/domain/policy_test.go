package domain

import (
	"testing"
	"time"

	coreerrors "weekcal-api/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		input   string
		want    Rule
		wantErr bool
	}{
		{input: "first-day", want: FirstDay},
		{input: "FirstDay", want: FirstDay},
		{input: "first-four-day-week", want: FirstFourDayWeek},
		{input: "iso", want: FirstFourDayWeek},
		{input: "4", want: FirstFourDayWeek},
		{input: "first_full_week", want: FirstFullWeek},
		{input: "full", want: FirstFullWeek},
		{input: "fortnight", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRule(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, coreerrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d)

	d, err = ParseWeekday("Sun")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, d)

	_, err = ParseWeekday("someday")
	assert.True(t, coreerrors.IsValidation(err))
}

func TestPolicy_KeyAndString(t *testing.T) {
	assert.Equal(t, "mon-4", DefaultPolicy.Key())
	assert.Equal(t, "Monday/first-four-day-week", DefaultPolicy.String())

	us := Policy{FirstDayOfWeek: time.Sunday, Rule: FirstDay}
	assert.Equal(t, "sun-1", us.Key())

	full := Policy{FirstDayOfWeek: time.Saturday, Rule: FirstFullWeek}
	assert.Equal(t, "sat-7", full.Key())
}

func TestPolicy_Validate(t *testing.T) {
	assert.NoError(t, DefaultPolicy.Validate())
	assert.Error(t, Policy{FirstDayOfWeek: time.Weekday(9), Rule: FirstDay}.Validate())
	assert.Error(t, Policy{FirstDayOfWeek: time.Monday, Rule: Rule(12)}.Validate())
}

func TestParsePolicy_KeepsBaseForEmptyValues(t *testing.T) {
	p, err := ParsePolicy(DefaultPolicy, "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy, p)

	p, err = ParsePolicy(DefaultPolicy, "sunday", "")
	require.NoError(t, err)
	assert.Equal(t, Policy{FirstDayOfWeek: time.Sunday, Rule: FirstFourDayWeek}, p)

	p, err = ParsePolicy(DefaultPolicy, "", "first-day")
	require.NoError(t, err)
	assert.Equal(t, Policy{FirstDayOfWeek: time.Monday, Rule: FirstDay}, p)

	_, err = ParsePolicy(DefaultPolicy, "nope", "")
	assert.Error(t, err)
}
