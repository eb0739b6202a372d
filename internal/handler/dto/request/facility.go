package request

import "courtmate-gateway/internal/domain/geo"

type NearbyRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	RadiusKm  *float64 `json:"radius_km"`
}

func (r NearbyRequest) ToDomain() (geo.SearchArea, error) {
	return geo.NewSearchArea(r.Latitude, r.Longitude, r.RadiusKm)
}
