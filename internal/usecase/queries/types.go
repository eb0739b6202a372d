package queries

//go:generate mockgen -source=types.go -destination=../../../tests/mock/queries/mock_types.go -package=queriesmock

import (
	"context"
	"encoding/json"
	"time"

	"courtmate-gateway/internal/domain/facility"
	"courtmate-gateway/internal/domain/geo"
	"courtmate-gateway/internal/domain/reservation"
	"courtmate-gateway/internal/infra/upstream"
)

// Outbound ports. The upstream package provides the implementations.

type ReservationReader interface {
	List(ctx context.Context, accessToken string) ([]reservation.Reservation, error)
}

type FacilityReader interface {
	GetFacility(ctx context.Context, id, accessToken string, timeout time.Duration) (facility.Facility, error)
	Nearby(ctx context.Context, area geo.SearchArea) (upstream.NearbyResult, error)
}

// Read models

type SearchLocationView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
}

// NearbyView is the geosearch answer. Extra holds the facilities service body;
// members it carries are written as received and the rest come from the typed fields.
type NearbyView struct {
	Courts         []json.RawMessage          `json:"courts"`
	TotalCount     int                        `json:"total_count"`
	SearchLocation SearchLocationView         `json:"search_location"`
	Extra          map[string]json.RawMessage `json:"-"`
}

func (v NearbyView) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(v.Extra)+3)
	for k, raw := range v.Extra {
		out[k] = raw
	}
	fill := func(key string, val any) error {
		if raw, ok := out[key]; ok && string(raw) != "null" {
			return nil
		}
		b, err := json.Marshal(val)
		if err != nil {
			return err
		}
		out[key] = b
		return nil
	}
	courts := v.Courts
	if courts == nil {
		courts = []json.RawMessage{}
	}
	if err := fill("courts", courts); err != nil {
		return nil, err
	}
	if err := fill("total_count", v.TotalCount); err != nil {
		return nil, err
	}
	if err := fill("search_location", v.SearchLocation); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}
