//go:build unit

package facility_test

import (
	"testing"

	"courtmate-gateway/internal/domain/facility"

	"github.com/stretchr/testify/assert"
)

func TestFacility_Summary(t *testing.T) {
	cases := []struct {
		name     string
		facility facility.Facility
		want     facility.Summary
	}{
		{
			name:     "full facility",
			facility: facility.Facility{Name: "Tivoli Courts", AddressLine: "Celovska 25", City: "Ljubljana"},
			want:     facility.Summary{Name: "Tivoli Courts", Address: "Celovska 25", City: "Ljubljana"},
		},
		{
			name:     "address falls back to city",
			facility: facility.Facility{Name: "Tivoli Courts", City: "Ljubljana"},
			want:     facility.Summary{Name: "Tivoli Courts", Address: "Ljubljana", City: "Ljubljana"},
		},
		{
			name:     "no address and no name",
			facility: facility.Facility{},
			want:     facility.Summary{Name: "Unknown Court", Address: "No address", City: ""},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.facility.Summary())
		})
	}
}

func TestUnknownSummary(t *testing.T) {
	assert.Equal(t, facility.Summary{Name: "Unknown Court", Address: "Address unavailable", City: ""}, facility.UnknownSummary())
}
