package models

import "strings"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type LocationType string

const (
	LocationCity    LocationType = "city"
	LocationAirport LocationType = "airport"
)

// Location is a resolved place. ID is a short airport/city style code used
// for cache keys and display; it is not guaranteed globally unique.
type Location struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Type        LocationType `json:"type"`
	Coordinates Coordinates  `json:"coordinates"`
	IsFallback  bool         `json:"is_fallback"`
}

type Mode string

const (
	ModeFlights Mode = "flights"
	ModeTrains  Mode = "trains"
	ModeBuses   Mode = "buses"
)

// ParseMode accepts common singular/plural spellings and defaults to flights.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trains", "train", "rail":
		return ModeTrains
	case "buses", "bus", "coach":
		return ModeBuses
	default:
		return ModeFlights
	}
}
