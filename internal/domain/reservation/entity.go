package reservation

import (
	"encoding/json"

	"courtmate-gateway/internal/domain/facility"
)

// Reservation mirrors the booking service's reservation record. Timestamps stay
// in the booking service's own string form and are relayed without reformatting.
// Decimal prices arrive as either a JSON number or a numeric string. Fields keeps
// every member of the record, including ones the gateway does not model.
type Reservation struct {
	ID           string      `json:"id"`
	CourtID      string      `json:"court_id"`
	UserID       string      `json:"user_id"`
	StartsAt     string      `json:"starts_at"`
	EndsAt       string      `json:"ends_at"`
	TotalPrice   json.Number `json:"total_price"`
	CreatedAt    string      `json:"created_at"`
	CancelledAt  *string     `json:"cancelled_at"`
	CancelReason *string     `json:"cancel_reason"`

	Fields map[string]json.RawMessage `json:"-"`
}

func (r *Reservation) UnmarshalJSON(b []byte) error {
	type plain Reservation
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if err := json.Unmarshal(b, &p.Fields); err != nil {
		return err
	}
	*r = Reservation(p)
	return nil
}

func (r Reservation) Status() Status {
	if r.CancelledAt != nil && *r.CancelledAt != "" {
		return StatusCanceled
	}
	return StatusConfirmed
}

// Booking is a reservation joined with the display data of its court.
type Booking struct {
	Reservation
	Court facility.Summary `json:"court"`
}

func NewBooking(r Reservation, court facility.Summary) Booking {
	return Booking{Reservation: r, Court: court}
}

// Request is a validated reservation request ready to be sent to the booking service.
type Request struct {
	CourtID string
	Slot    TimeSlot
}
