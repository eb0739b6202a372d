package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"courtmate-gateway/internal/domain/reservation"
)

const reservationPath = "/reservation/"

type BookingAPI struct {
	client *Client
}

func NewBookingAPI(client *Client) *BookingAPI {
	return &BookingAPI{client: client}
}

func (b *BookingAPI) List(ctx context.Context, accessToken string) ([]reservation.Reservation, error) {
	var out []reservation.Reservation
	err := b.client.DoJSON(ctx, Request{
		Method: http.MethodGet,
		Path:   reservationPath,
		Token:  accessToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []reservation.Reservation{}
	}
	return out, nil
}

// Create submits a validated reservation request and returns the service's body as is.
func (b *BookingAPI) Create(ctx context.Context, accessToken string, req reservation.Request) (json.RawMessage, error) {
	var out json.RawMessage
	err := b.client.DoJSON(ctx, Request{
		Method: http.MethodPost,
		Path:   reservationPath,
		Token:  accessToken,
		Body: map[string]string{
			"court_id":  req.CourtID,
			"starts_at": req.Slot.RawStart(),
			"ends_at":   req.Slot.RawEnd(),
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
