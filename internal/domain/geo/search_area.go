package geo

import (
	"errors"
	"math"
)

const (
	MaxRadiusKm = 50
)

var (
	ErrMissingCoordinates  = errors.New("Invalid input: latitude, longitude, and radius_km are required")
	ErrLatitudeOutOfRange  = errors.New("Latitude must be between -90 and 90")
	ErrLongitudeOutOfRange = errors.New("Longitude must be between -180 and 180")
	ErrRadiusOutOfRange    = errors.New("Radius must be between 0 and 50 km")
)

// SearchArea is a validated circle on the map: a center point and a radius in kilometers.
type SearchArea struct {
	latitude  float64
	longitude float64
	radiusKm  float64
}

// NewSearchArea validates raw request input. Nil values are treated as missing.
func NewSearchArea(latitude, longitude, radiusKm *float64) (SearchArea, error) {
	if latitude == nil || longitude == nil || radiusKm == nil {
		return SearchArea{}, ErrMissingCoordinates
	}
	lat, lon, r := *latitude, *longitude, *radiusKm
	if !finite(lat) || !finite(lon) || !finite(r) {
		return SearchArea{}, ErrMissingCoordinates
	}

	if lat < -90 || lat > 90 {
		return SearchArea{}, ErrLatitudeOutOfRange
	}
	if lon < -180 || lon > 180 {
		return SearchArea{}, ErrLongitudeOutOfRange
	}
	if r <= 0 || r > MaxRadiusKm {
		return SearchArea{}, ErrRadiusOutOfRange
	}

	return SearchArea{latitude: lat, longitude: lon, radiusKm: r}, nil
}

func (a SearchArea) Latitude() float64 {
	return a.latitude
}

func (a SearchArea) Longitude() float64 {
	return a.longitude
}

func (a SearchArea) RadiusKm() float64 {
	return a.radiusKm
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
