package geo

import (
	"errors"
	"math"

	"github.com/voyago/travelsearch/internal/models"
)

const earthRadiusKm = 6371

var ErrInvalidCoordinate = errors.New("coordinate out of range")

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(a, b models.Coordinates) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Validate rejects NaN, infinite, and out-of-range coordinates so garbage
// never flows downstream into prices or display fields.
func Validate(c models.Coordinates) error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return ErrInvalidCoordinate
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return ErrInvalidCoordinate
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

// BuildPath computes the route geometry between two points for a mode.
// Flights get a straight 2-point chord; trains get 2 and buses 3 linearly
// interpolated intermediate points. The polyline is a visual approximation,
// not a road or rail path.
func BuildPath(origin, destination models.Coordinates, mode models.Mode) (models.RoutePath, error) {
	if err := Validate(origin); err != nil {
		return models.RoutePath{}, err
	}
	if err := Validate(destination); err != nil {
		return models.RoutePath{}, err
	}

	path := []models.Coordinates{origin}

	if mode != models.ModeFlights {
		steps := 3
		if mode == models.ModeTrains {
			steps = 2
		}
		for i := 1; i <= steps; i++ {
			fraction := float64(i) / float64(steps+1)
			path = append(path, models.Coordinates{
				Latitude:  origin.Latitude + (destination.Latitude-origin.Latitude)*fraction,
				Longitude: origin.Longitude + (destination.Longitude-origin.Longitude)*fraction,
			})
		}
	}

	path = append(path, destination)

	return models.RoutePath{
		Path: path,
		Markers: []models.Marker{
			{Type: models.MarkerSource, Coordinates: origin},
			{Type: models.MarkerDestination, Coordinates: destination},
		},
		DistanceKm: Haversine(origin, destination),
	}, nil
}
