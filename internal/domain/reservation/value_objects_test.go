//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"courtmate-gateway/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	t.Run("success: keeps the caller's datetime text", func(t *testing.T) {
		req, err := reservation.NewRequest("court-1", "2026-05-10T14:00:00+02:00", "2026-05-10T15:30:00+02:00", now)
		require.NoError(t, err)

		assert.Equal(t, "court-1", req.CourtID)
		assert.Equal(t, "2026-05-10T14:00:00+02:00", req.Slot.RawStart())
		assert.Equal(t, "2026-05-10T15:30:00+02:00", req.Slot.RawEnd())
		assert.True(t, req.Slot.Start().Equal(time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)))
		assert.Equal(t, 90*time.Minute, req.Slot.Duration())
	})

	t.Run("success: zone-less datetimes are read as UTC", func(t *testing.T) {
		req, err := reservation.NewRequest("court-1", "2026-05-10T10:00", "2026-05-10T11:00:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC), req.Slot.Start())
	})

	cases := []struct {
		name    string
		courtID string
		start   string
		end     string
		wantErr error
	}{
		{name: "missing court", courtID: "", start: "2026-05-10T10:00:00Z", end: "2026-05-10T11:00:00Z", wantErr: reservation.ErrMissingFields},
		{name: "missing end", courtID: "c", start: "2026-05-10T10:00:00Z", end: "", wantErr: reservation.ErrMissingFields},
		{name: "unparseable start", courtID: "c", start: "tomorrow", end: "2026-05-10T11:00:00Z", wantErr: reservation.ErrInvalidDatetime},
		{name: "end equals start", courtID: "c", start: "2026-05-10T10:00:00Z", end: "2026-05-10T10:00:00Z", wantErr: reservation.ErrEndBeforeStart},
		{name: "end before start", courtID: "c", start: "2026-05-10T11:00:00Z", end: "2026-05-10T10:00:00Z", wantErr: reservation.ErrEndBeforeStart},
		{name: "start in the past", courtID: "c", start: "2026-05-10T08:00:00Z", end: "2026-05-10T10:00:00Z", wantErr: reservation.ErrStartInPast},
		{name: "start in the past once the offset applies", courtID: "c", start: "2026-05-10T10:30:00+02:00", end: "2026-05-10T12:00:00+02:00", wantErr: reservation.ErrStartInPast},
	}

	for _, tc := range cases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			_, err := reservation.NewRequest(tc.courtID, tc.start, tc.end, now)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestReservation_Status(t *testing.T) {
	cancelled := "2026-05-01T10:00:00Z"
	assert.Equal(t, reservation.StatusConfirmed, reservation.Reservation{}.Status())
	assert.Equal(t, reservation.StatusCanceled, reservation.Reservation{CancelledAt: &cancelled}.Status())
}
