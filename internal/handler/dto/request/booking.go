package request

import (
	"time"

	"courtmate-gateway/internal/domain/reservation"
)

// CreateBookingRequest keeps the times as strings; parsing happens in ToDomain so each
// failure gets its own client message.
type CreateBookingRequest struct {
	CourtID  string `json:"court_id"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}

func (r CreateBookingRequest) ToDomain(now time.Time) (reservation.Request, error) {
	return reservation.NewRequest(r.CourtID, r.StartsAt, r.EndsAt, now)
}
