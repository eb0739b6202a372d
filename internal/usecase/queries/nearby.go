package queries

//go:generate mockgen -source=nearby.go -destination=../../../tests/mock/queries/mock_nearby.go -package=queriesmock

import (
	"context"
	"encoding/json"

	"courtmate-gateway/internal/domain/geo"
)

type NearbyQueries interface {
	Search(ctx context.Context, area geo.SearchArea) (*NearbyView, error)
}

type nearbyQueriesImpl struct {
	facilities FacilityReader
}

func NewNearbyQueries(facilities FacilityReader) NearbyQueries {
	return &nearbyQueriesImpl{facilities: facilities}
}

// Search relays the facilities service answer with every member it sent. total_count and
// search_location are filled in from the result and the request when the service leaves them out.
func (q *nearbyQueriesImpl) Search(ctx context.Context, area geo.SearchArea) (*NearbyView, error) {
	res, err := q.facilities.Nearby(ctx, area)
	if err != nil {
		return nil, err
	}

	courts := res.Courts
	if courts == nil {
		courts = []json.RawMessage{}
	}

	view := &NearbyView{
		Courts:     courts,
		TotalCount: len(courts),
		SearchLocation: SearchLocationView{
			Latitude:  area.Latitude(),
			Longitude: area.Longitude(),
			RadiusKm:  area.RadiusKm(),
		},
		Extra: res.Fields,
	}
	if res.TotalCount != nil {
		view.TotalCount = *res.TotalCount
	}
	if res.SearchLocation != nil {
		view.SearchLocation = SearchLocationView(*res.SearchLocation)
	}
	return view, nil
}
