package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"weekcal-api/pkg/featureflags"
)

func TestFeatureFlagsMiddleware(t *testing.T) {
	manager := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.AdjacentWeeks: false,
	})

	var adjacent, seen bool
	handler := FeatureFlagsMiddleware(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = true
		adjacent = featureflags.IsEnabled(r.Context(), featureflags.AdjacentWeeks)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/weeks/current", nil))

	assert.True(t, seen)
	assert.False(t, adjacent)
}
