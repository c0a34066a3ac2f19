package models

import "time"

type MarkerType string

const (
	MarkerSource      MarkerType = "source"
	MarkerDestination MarkerType = "destination"
)

type Marker struct {
	Type        MarkerType  `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
}

// RoutePath is the geometric description of a journey. Path holds the origin
// first and the destination last; flights carry a straight 2-point chord,
// ground modes an interpolated polyline.
type RoutePath struct {
	Path       []Coordinates `json:"path"`
	Markers    []Marker      `json:"markers"`
	DistanceKm float64       `json:"distance_km"`
}

type VehicleKind string

const (
	VehicleFlight VehicleKind = "flight"
	VehicleTrain  VehicleKind = "train"
	VehicleBus    VehicleKind = "bus"
)

// VehicleRef identifies the vehicle serving an option. One tagged value
// replaces the three mutually-exclusive nullable number fields the legacy
// payload carried.
type VehicleRef struct {
	Kind   VehicleKind `json:"kind"`
	Number string      `json:"number"`
}

func (m Mode) VehicleKind() VehicleKind {
	switch m {
	case ModeTrains:
		return VehicleTrain
	case ModeBuses:
		return VehicleBus
	default:
		return VehicleFlight
	}
}

type Carrier struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// TravelOption is one purchasable itinerary leg. Price is the aggregate for
// the whole party, already multiplied by the passenger factor.
type TravelOption struct {
	ID                     string        `json:"id"`
	Carrier                Carrier       `json:"carrier"`
	Vehicle                VehicleRef    `json:"vehicle"`
	Price                  float64       `json:"price"`
	Currency               string        `json:"currency"`
	PriceFormatted         string        `json:"price_formatted"`
	DepartureTime          time.Time     `json:"departure_time"`
	ArrivalTime            time.Time     `json:"arrival_time"`
	DurationMinutes        int           `json:"duration_minutes"`
	Origin                 string        `json:"origin"`
	Destination            string        `json:"destination"`
	Stops                  int           `json:"stops"`
	CarbonKg               int           `json:"carbon_kg"`
	Baggage                string        `json:"baggage"`
	Amenities              []string      `json:"amenities,omitempty"`
	OriginCoordinates      Coordinates   `json:"origin_coordinates"`
	DestinationCoordinates Coordinates   `json:"destination_coordinates"`
	RoutePath              []Coordinates `json:"route_path"`
	Markers                []Marker      `json:"markers"`
	DistanceKm             float64       `json:"distance_km"`
	Waypoints              []Coordinates `json:"waypoints,omitempty"`
	BestValueScore         float64       `json:"best_value_score,omitempty"`
}
