package response

import (
	"encoding/json"

	"courtmate-gateway/internal/domain/reservation"

	"github.com/jinzhu/copier"
)

type CourtResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// BookingResponse is a reservation record with its status and court. Extra carries
// the booking service's members; modelled ones are written from the typed fields.
type BookingResponse struct {
	ID           string        `json:"id"`
	CourtID      string        `json:"court_id"`
	UserID       string        `json:"user_id"`
	StartsAt     string        `json:"starts_at"`
	EndsAt       string        `json:"ends_at"`
	TotalPrice   json.Number   `json:"total_price"`
	Status       string        `json:"status"`
	CreatedAt    string        `json:"created_at"`
	CancelledAt  *string       `json:"cancelled_at"`
	CancelReason *string       `json:"cancel_reason"`
	Court        CourtResponse `json:"court"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (r BookingResponse) MarshalJSON() ([]byte, error) {
	type plain BookingResponse
	b, err := json.Marshal(plain(r))
	if err != nil || len(r.Extra) == 0 {
		return b, err
	}
	var typed map[string]json.RawMessage
	if err := json.Unmarshal(b, &typed); err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage, len(r.Extra)+len(typed))
	for k, v := range r.Extra {
		out[k] = v
	}
	for k, v := range typed {
		out[k] = v
	}
	return json.Marshal(out)
}

func FromBooking(b reservation.Booking) (BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, &b.Reservation); err != nil {
		return BookingResponse{}, err
	}
	if err := copier.Copy(&res.Court, &b.Court); err != nil {
		return BookingResponse{}, err
	}
	res.Status = string(b.Status())
	res.Extra = b.Fields
	if res.TotalPrice == "" {
		res.TotalPrice = "0"
	}
	return res, nil
}

func FromBookings(bs []reservation.Booking) ([]BookingResponse, error) {
	out := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		res, err := FromBooking(b)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
