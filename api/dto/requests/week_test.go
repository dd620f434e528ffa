package requests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekcal-api/core/domain"
	coreerrors "weekcal-api/core/errors"
)

func TestPolicyQuery_Policy(t *testing.T) {
	sundayBase := domain.Policy{FirstDayOfWeek: time.Sunday, Rule: domain.FirstDay}

	tests := []struct {
		name  string
		query PolicyQuery
		base  domain.Policy
		want  domain.Policy
	}{
		{"empty keeps base", PolicyQuery{}, sundayBase, sundayBase},
		{"locale replaces base", PolicyQuery{Locale: "it-IT"}, sundayBase, domain.DefaultPolicy},
		{"rule overrides locale", PolicyQuery{Locale: "en-US", Rule: "iso"}, domain.DefaultPolicy,
			domain.Policy{FirstDayOfWeek: time.Sunday, Rule: domain.FirstFourDayWeek}},
		{"first day only", PolicyQuery{FirstDay: "sat"}, domain.DefaultPolicy,
			domain.Policy{FirstDayOfWeek: time.Saturday, Rule: domain.FirstFourDayWeek}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.Policy(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicyQuery_PolicyErrors(t *testing.T) {
	for _, q := range []PolicyQuery{
		{Locale: "not a locale!"},
		{FirstDay: "someday"},
		{Rule: "lunar"},
	} {
		_, err := q.Policy(domain.DefaultPolicy)
		assert.True(t, coreerrors.IsValidation(err), "%+v", q)
	}
}

func TestPolicyQuery_LabelFormat(t *testing.T) {
	assert.Equal(t, "S", PolicyQuery{}.LabelFormat())
	assert.Equal(t, "i", PolicyQuery{Format: "i"}.LabelFormat())
}
