package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"courtmate-gateway/internal/domain/facility"
	"courtmate-gateway/internal/domain/geo"
)

type SearchLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
}

// NearbyResult is the facilities service answer to a geosearch. Courts are relayed untouched.
// Fields keeps every top-level member exactly as the service sent it.
type NearbyResult struct {
	Courts         []json.RawMessage          `json:"courts"`
	TotalCount     *int                       `json:"total_count"`
	SearchLocation *SearchLocation            `json:"search_location"`
	Fields         map[string]json.RawMessage `json:"-"`
}

func (r *NearbyResult) UnmarshalJSON(b []byte) error {
	type plain NearbyResult
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if err := json.Unmarshal(b, &p.Fields); err != nil {
		return err
	}
	*r = NearbyResult(p)
	return nil
}

type FacilitiesAPI struct {
	client     *Client
	apiVersion string
}

func NewFacilitiesAPI(client *Client, apiVersion string) *FacilitiesAPI {
	return &FacilitiesAPI{client: client, apiVersion: apiVersion}
}

// Path prefixes p with the versioned API root, e.g. "facilities" -> "/api/v1/facilities".
func (f *FacilitiesAPI) Path(p string) string {
	return "/api/" + f.apiVersion + "/" + p
}

func (f *FacilitiesAPI) Nearby(ctx context.Context, area geo.SearchArea) (NearbyResult, error) {
	var out NearbyResult
	err := f.client.DoJSON(ctx, Request{
		Method: http.MethodPost,
		Path:   f.Path("facilities/nearby"),
		Body: SearchLocation{
			Latitude:  area.Latitude(),
			Longitude: area.Longitude(),
			RadiusKm:  area.RadiusKm(),
		},
	}, &out)
	if err != nil {
		return NearbyResult{}, err
	}
	return out, nil
}

// GetFacility looks up a single venue. timeout bounds this call on its own,
// independent of any deadline the caller already holds.
func (f *FacilitiesAPI) GetFacility(ctx context.Context, id, accessToken string, timeout time.Duration) (facility.Facility, error) {
	var out facility.Facility
	err := f.client.DoJSON(ctx, Request{
		Method:  http.MethodGet,
		Path:    f.Path("facilities/" + url.PathEscape(id)),
		Token:   accessToken,
		Timeout: timeout,
	}, &out)
	if err != nil {
		return facility.Facility{}, err
	}
	return out, nil
}
