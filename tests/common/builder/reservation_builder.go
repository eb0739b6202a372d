//go:build unit || e2e

package builder

import (
	"encoding/json"

	"courtmate-gateway/internal/domain/reservation"
	reqdto "courtmate-gateway/internal/handler/dto/request"
)

type ReservationBuilder struct {
	ID           string
	CourtID      string
	UserID       string
	StartsAt     string
	EndsAt       string
	TotalPrice   string
	CreatedAt    string
	CancelledAt  *string
	CancelReason *string
	Fields       map[string]json.RawMessage
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         "6a1c7d3e-2f4b-4c5d-8e9f-0a1b2c3d4e5f",
		CourtID:    "court-1",
		UserID:     "user-123",
		StartsAt:   "2026-05-10T10:00:00Z",
		EndsAt:     "2026-05-10T11:00:00Z",
		TotalPrice: "25.00",
		CreatedAt:  "2026-05-01T08:30:00Z",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) Build() reservation.Reservation {
	return reservation.Reservation{
		ID:           r.ID,
		CourtID:      r.CourtID,
		UserID:       r.UserID,
		StartsAt:     r.StartsAt,
		EndsAt:       r.EndsAt,
		TotalPrice:   json.Number(r.TotalPrice),
		CreatedAt:    r.CreatedAt,
		CancelledAt:  r.CancelledAt,
		CancelReason: r.CancelReason,
		Fields:       r.Fields,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CourtID:  r.CourtID,
		StartsAt: r.StartsAt,
		EndsAt:   r.EndsAt,
	}
}
