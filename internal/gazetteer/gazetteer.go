package gazetteer

import "github.com/voyago/travelsearch/internal/models"

// The gazetteer is assembled from two static tables: major cities and the
// airports layered on top of them. Both are merged eagerly when a Resolver is
// constructed; there is no lazy initialization to get wrong.

var cityEntries = map[string]models.Location{
	"new york": {
		ID: "NYC", Name: "New York", City: "New York", Country: "United States",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 40.7128, Longitude: -74.006},
	},
	"los angeles": {
		ID: "LAX", Name: "Los Angeles", City: "Los Angeles", Country: "United States",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 34.0522, Longitude: -118.2437},
	},
	"london": {
		ID: "LON", Name: "London", City: "London", Country: "United Kingdom",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 51.5074, Longitude: -0.1278},
	},
	"paris": {
		ID: "PAR", Name: "Paris", City: "Paris", Country: "France",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 48.8566, Longitude: 2.3522},
	},
	"tokyo": {
		ID: "TYO", Name: "Tokyo", City: "Tokyo", Country: "Japan",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 35.6762, Longitude: 139.6503},
	},
	"dubai": {
		ID: "DXB", Name: "Dubai", City: "Dubai", Country: "United Arab Emirates",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 25.2048, Longitude: 55.2708},
	},
	"singapore": {
		ID: "SIN", Name: "Singapore", City: "Singapore", Country: "Singapore",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 1.3521, Longitude: 103.8198},
	},
	"sydney": {
		ID: "SYD", Name: "Sydney", City: "Sydney", Country: "Australia",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: -33.8688, Longitude: 151.2093},
	},
	"mumbai": {
		ID: "BOM", Name: "Mumbai", City: "Mumbai", Country: "India",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 19.076, Longitude: 72.8777},
	},
	"san francisco": {
		ID: "SFO", Name: "San Francisco", City: "San Francisco", Country: "United States",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 37.7749, Longitude: -122.4194},
	},
	"chicago": {
		ID: "CHI", Name: "Chicago", City: "Chicago", Country: "United States",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 41.8781, Longitude: -87.6298},
	},
	"miami": {
		ID: "MIA", Name: "Miami", City: "Miami", Country: "United States",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 25.7617, Longitude: -80.1918},
	},
	"rome": {
		ID: "ROM", Name: "Rome", City: "Rome", Country: "Italy",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 41.9028, Longitude: 12.4964},
	},
	"istanbul": {
		ID: "IST", Name: "Istanbul", City: "Istanbul", Country: "Turkey",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 41.0082, Longitude: 28.9784},
	},
	"berlin": {
		ID: "BER", Name: "Berlin", City: "Berlin", Country: "Germany",
		Type: models.LocationCity, Coordinates: models.Coordinates{Latitude: 52.52, Longitude: 13.405},
	},
}

var airportEntries = map[string]models.Location{
	"jfk": {
		ID: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "United States",
		Type: models.LocationAirport, Coordinates: models.Coordinates{Latitude: 40.6413, Longitude: -73.7781},
	},
	"heathrow": {
		ID: "LHR", Name: "London Heathrow", City: "London", Country: "United Kingdom",
		Type: models.LocationAirport, Coordinates: models.Coordinates{Latitude: 51.47, Longitude: -0.4543},
	},
	"charles de gaulle": {
		ID: "CDG", Name: "Paris Charles de Gaulle", City: "Paris", Country: "France",
		Type: models.LocationAirport, Coordinates: models.Coordinates{Latitude: 49.0097, Longitude: 2.5479},
	},
	"haneda": {
		ID: "HND", Name: "Tokyo Haneda", City: "Tokyo", Country: "Japan",
		Type: models.LocationAirport, Coordinates: models.Coordinates{Latitude: 35.5494, Longitude: 139.7798},
	},
	"frankfurt": {
		ID: "FRA", Name: "Frankfurt am Main", City: "Frankfurt", Country: "Germany",
		Type: models.LocationAirport, Coordinates: models.Coordinates{Latitude: 50.0379, Longitude: 8.5622},
	},
}

// approxCityCoords backs the last-resort fallback constructor. Misses default
// to New York.
var approxCityCoords = map[string]models.Coordinates{
	"boston":    {Latitude: 42.3601, Longitude: -71.0589},
	"seattle":   {Latitude: 47.6062, Longitude: -122.3321},
	"madrid":    {Latitude: 40.4168, Longitude: -3.7038},
	"amsterdam": {Latitude: 52.3676, Longitude: 4.9041},
	"bangkok":   {Latitude: 13.7563, Longitude: 100.5018},
	"toronto":   {Latitude: 43.6532, Longitude: -79.3832},
}

var defaultFallbackCoords = models.Coordinates{Latitude: 40.7128, Longitude: -74.006}

func buildIndex() (map[string]models.Location, map[string]models.Location) {
	byName := make(map[string]models.Location, len(cityEntries)+len(airportEntries))
	byCode := make(map[string]models.Location, len(cityEntries)+len(airportEntries))

	for name, loc := range cityEntries {
		byName[name] = loc
		byCode[loc.ID] = loc
	}
	for name, loc := range airportEntries {
		byName[name] = loc
		byCode[loc.ID] = loc
	}

	return byName, byCode
}
