package amadeus

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/voyago/travelsearch/internal/models"
)

var (
	testOrigin = &models.Location{
		ID: "NYC", City: "New York",
		Coordinates: models.Coordinates{Latitude: 40.7128, Longitude: -74.006},
	}
	testDestination = &models.Location{
		ID: "LAX", City: "Los Angeles",
		Coordinates: models.Coordinates{Latitude: 34.0522, Longitude: -118.2437},
	}
)

const offersBody = `{
	"data": [
		{
			"price": {"grandTotal": "325.40", "currency": "USD"},
			"itineraries": [{
				"duration": "PT6H15M",
				"segments": [{
					"departure": {"iataCode": "JFK", "at": "2025-06-01T08:30:00"},
					"arrival": {"iataCode": "LAX", "at": "2025-06-01T14:45:00"},
					"carrierCode": "DL",
					"number": "410"
				}]
			}]
		},
		{
			"price": {"total": "289.00", "currency": "USD"},
			"itineraries": [{
				"duration": "PT8H",
				"segments": [
					{
						"departure": {"iataCode": "JFK", "at": "2025-06-01T06:00:00"},
						"arrival": {"iataCode": "ORD", "at": "2025-06-01T08:10:00"},
						"carrierCode": "UA",
						"number": "88"
					},
					{
						"departure": {"iataCode": "ORD", "at": "2025-06-01T10:00:00"},
						"arrival": {"iataCode": "LAX", "at": "2025-06-01T14:00:00"},
						"carrierCode": "UA",
						"number": "231"
					}
				]
			}]
		}
	]
}`

func newTestServer(t *testing.T, tokenCalls *int, offersStatus int, offersPayload string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if tokenCalls != nil {
			*tokenCalls++
		}
		fmt.Fprint(w, `{"access_token":"test-token","expires_in":1799}`)
	})

	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("originLocationCode") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(offersStatus)
		fmt.Fprint(w, offersPayload)
	})

	return httptest.NewServer(mux)
}

func newTestClient(serverURL string) *Client {
	return NewClient(Config{
		ClientID:     "id",
		ClientSecret: "secret",
		BaseURL:      serverURL,
	})
}

func TestSearchOffersMapsOptions(t *testing.T) {
	server := newTestServer(t, nil, http.StatusOK, offersBody)
	defer server.Close()

	client := newTestClient(server.URL)
	options, err := client.SearchOffers(context.Background(), testOrigin, testDestination, "2025-06-01", 1)
	if err != nil {
		t.Fatalf("SearchOffers: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}

	direct := options[0]
	if direct.Price != 325.40 {
		t.Errorf("expected price 325.40, got %f", direct.Price)
	}
	if direct.Stops != 0 {
		t.Errorf("expected nonstop, got %d stops", direct.Stops)
	}
	if direct.Vehicle.Kind != models.VehicleFlight || direct.Vehicle.Number != "DL410" {
		t.Errorf("unexpected vehicle: %+v", direct.Vehicle)
	}
	if direct.Carrier.Name != "Delta Air Lines" {
		t.Errorf("unexpected carrier name: %s", direct.Carrier.Name)
	}
	if direct.DurationMinutes != 375 {
		t.Errorf("expected 375 minutes, got %d", direct.DurationMinutes)
	}
	if direct.Origin != "New York" || direct.Destination != "Los Angeles" {
		t.Errorf("unexpected endpoints: %s -> %s", direct.Origin, direct.Destination)
	}
	if direct.CarbonKg <= 0 {
		t.Errorf("expected positive carbon estimate, got %d", direct.CarbonKg)
	}
	if len(direct.RoutePath) != 2 {
		t.Errorf("expected 2-point flight path, got %d", len(direct.RoutePath))
	}

	connecting := options[1]
	if connecting.Price != 289.00 {
		t.Errorf("expected fallback to price.total, got %f", connecting.Price)
	}
	if connecting.Stops != 1 {
		t.Errorf("expected 1 stop, got %d", connecting.Stops)
	}
}

func TestSearchOffersCachesToken(t *testing.T) {
	tokenCalls := 0
	server := newTestServer(t, &tokenCalls, http.StatusOK, offersBody)
	defer server.Close()

	client := newTestClient(server.URL)
	for i := 0; i < 3; i++ {
		if _, err := client.SearchOffers(context.Background(), testOrigin, testDestination, "2025-06-01", 1); err != nil {
			t.Fatalf("SearchOffers call %d: %v", i, err)
		}
	}

	if tokenCalls != 1 {
		t.Errorf("expected a single token fetch across searches, got %d", tokenCalls)
	}
}

func TestSearchOffersNotConfigured(t *testing.T) {
	client := NewClient(Config{})
	_, err := client.SearchOffers(context.Background(), testOrigin, testDestination, "2025-06-01", 1)
	if err != ErrNotConfigured {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSearchOffersNon2xx(t *testing.T) {
	server := newTestServer(t, nil, http.StatusInternalServerError, `{"errors":[]}`)
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.SearchOffers(context.Background(), testOrigin, testDestination, "2025-06-01", 1); err == nil {
		t.Error("expected error for non-2xx response")
	}
}

func TestSearchOffersMalformedBody(t *testing.T) {
	server := newTestServer(t, nil, http.StatusOK, `{"data": [`)
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.SearchOffers(context.Background(), testOrigin, testDestination, "2025-06-01", 1); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestSearchOffersSkipsUnusableOffers(t *testing.T) {
	payload := `{
		"data": [
			{"price": {"grandTotal": "0"}, "itineraries": [{"duration": "PT1H", "segments": [
				{"departure": {"iataCode": "JFK", "at": "2025-06-01T08:00:00"},
				 "arrival": {"iataCode": "LAX", "at": "2025-06-01T09:00:00"},
				 "carrierCode": "AA", "number": "1"}]}]},
			{"price": {"grandTotal": "100.00"}, "itineraries": []}
		]
	}`
	server := newTestServer(t, nil, http.StatusOK, payload)
	defer server.Close()

	client := newTestClient(server.URL)
	options, err := client.SearchOffers(context.Background(), testOrigin, testDestination, "2025-06-01", 1)
	if err != nil {
		t.Fatalf("SearchOffers: %v", err)
	}
	if len(options) != 0 {
		t.Errorf("expected unusable offers to be skipped, got %d options", len(options))
	}
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		iso  string
		want int
	}{
		{"PT6H15M", 375},
		{"PT8H", 480},
		{"PT45M", 45},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		if got := parseISODuration(tt.iso); got != tt.want {
			t.Errorf("parseISODuration(%q) = %d, expected %d", tt.iso, got, tt.want)
		}
	}
}
