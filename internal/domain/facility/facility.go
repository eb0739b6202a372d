package facility

import "courtmate-gateway/internal/pkg/patch"

const (
	UnknownCourtName   = "Unknown Court"
	UnavailableAddress = "Address unavailable"
	NoAddress          = "No address"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Facility is a venue as the facilities service describes it.
type Facility struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AddressLine string    `json:"address_line"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Location    *Location `json:"location,omitempty"`
}

type Court struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sport       string `json:"sport"`
	Indoor      bool   `json:"indoor"`
	SlotMinutes int    `json:"slot_minutes"`
	MinDuration int    `json:"min_duration"`
	MaxDuration int    `json:"max_duration"`
}

// Summary is the display join attached to a reservation.
type Summary struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

func (f Facility) Summary() Summary {
	return Summary{
		Name:    patch.FirstNonEmpty(f.Name, UnknownCourtName),
		Address: patch.FirstNonEmpty(f.AddressLine, f.City, NoAddress),
		City:    f.City,
	}
}

// UnknownSummary is used whenever the facility lookup for a reservation fails.
func UnknownSummary() Summary {
	return Summary{
		Name:    UnknownCourtName,
		Address: UnavailableAddress,
		City:    "",
	}
}
