package geo

import (
	"math"
	"testing"

	"github.com/voyago/travelsearch/internal/models"
)

var (
	newYork    = models.Coordinates{Latitude: 40.7128, Longitude: -74.006}
	losAngeles = models.Coordinates{Latitude: 34.0522, Longitude: -118.2437}
	chicago    = models.Coordinates{Latitude: 41.8781, Longitude: -87.6298}
	london     = models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
)

func TestHaversineKnownDistance(t *testing.T) {
	// NYC to LA is roughly 3936 km great-circle.
	d := Haversine(newYork, losAngeles)
	if math.Abs(d-3936) > 50 {
		t.Errorf("expected ~3936 km, got %.1f", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][2]models.Coordinates{
		{newYork, losAngeles},
		{london, newYork},
		{chicago, london},
		{{Latitude: -33.8688, Longitude: 151.2093}, {Latitude: 35.6762, Longitude: 139.6503}},
	}

	for _, pair := range pairs {
		ab := Haversine(pair[0], pair[1])
		ba := Haversine(pair[1], pair[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("distance not symmetric: %.6f vs %.6f", ab, ba)
		}
	}
}

func TestHaversineTriangleInequality(t *testing.T) {
	ac := Haversine(newYork, losAngeles)
	ab := Haversine(newYork, chicago)
	bc := Haversine(chicago, losAngeles)

	if ac > ab+bc+1e-6 {
		t.Errorf("triangle inequality violated: %.1f > %.1f + %.1f", ac, ab, bc)
	}
}

func TestHaversineZeroDistance(t *testing.T) {
	if d := Haversine(newYork, newYork); d != 0 {
		t.Errorf("expected 0, got %f", d)
	}
}

func TestBuildPathEndpoints(t *testing.T) {
	for _, mode := range []models.Mode{models.ModeFlights, models.ModeTrains, models.ModeBuses} {
		route, err := BuildPath(newYork, losAngeles, mode)
		if err != nil {
			t.Fatalf("BuildPath(%s) returned error: %v", mode, err)
		}
		if len(route.Path) < 2 {
			t.Fatalf("BuildPath(%s) returned %d points", mode, len(route.Path))
		}
		if route.Path[0] != newYork {
			t.Errorf("%s: path does not start at origin", mode)
		}
		if route.Path[len(route.Path)-1] != losAngeles {
			t.Errorf("%s: path does not end at destination", mode)
		}
	}
}

func TestBuildPathPointCounts(t *testing.T) {
	tests := []struct {
		mode models.Mode
		want int
	}{
		{models.ModeFlights, 2},
		{models.ModeTrains, 4},
		{models.ModeBuses, 5},
	}

	for _, tt := range tests {
		route, err := BuildPath(newYork, losAngeles, tt.mode)
		if err != nil {
			t.Fatalf("BuildPath(%s): %v", tt.mode, err)
		}
		if len(route.Path) != tt.want {
			t.Errorf("BuildPath(%s): expected %d points, got %d", tt.mode, tt.want, len(route.Path))
		}
	}
}

func TestBuildPathMarkers(t *testing.T) {
	route, err := BuildPath(newYork, losAngeles, models.ModeTrains)
	if err != nil {
		t.Fatal(err)
	}
	if len(route.Markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(route.Markers))
	}
	if route.Markers[0].Type != models.MarkerSource || route.Markers[0].Coordinates != newYork {
		t.Errorf("bad source marker: %+v", route.Markers[0])
	}
	if route.Markers[1].Type != models.MarkerDestination || route.Markers[1].Coordinates != losAngeles {
		t.Errorf("bad destination marker: %+v", route.Markers[1])
	}
}

func TestBuildPathRejectsInvalidInput(t *testing.T) {
	bad := []models.Coordinates{
		{Latitude: math.NaN(), Longitude: 0},
		{Latitude: 0, Longitude: math.NaN()},
		{Latitude: math.Inf(1), Longitude: 0},
		{Latitude: 91, Longitude: 0},
		{Latitude: -91, Longitude: 0},
		{Latitude: 0, Longitude: 181},
		{Latitude: 0, Longitude: -181},
	}

	for _, c := range bad {
		if _, err := BuildPath(c, losAngeles, models.ModeFlights); err == nil {
			t.Errorf("expected error for origin %+v", c)
		}
		if _, err := BuildPath(newYork, c, models.ModeFlights); err == nil {
			t.Errorf("expected error for destination %+v", c)
		}
	}
}

func TestBuildPathDistanceNonNegative(t *testing.T) {
	route, err := BuildPath(london, newYork, models.ModeBuses)
	if err != nil {
		t.Fatal(err)
	}
	if route.DistanceKm <= 0 {
		t.Errorf("expected positive distance, got %f", route.DistanceKm)
	}
}
