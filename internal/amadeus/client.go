package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/travelsearch/internal/geo"
	"github.com/voyago/travelsearch/internal/models"
	"github.com/voyago/travelsearch/internal/ratelimit"
	"github.com/voyago/travelsearch/pkg/currency"
)

// ErrNotConfigured signals that no API credentials are present. The caller
// treats it like any other miss and falls back to the generator.
var ErrNotConfigured = errors.New("flight api credentials not configured")

// tokenSlack refreshes the OAuth token this long before its stated expiry.
const tokenSlack = 5 * time.Minute

const flightEmissionKgPerKm = 0.2

type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	Limiter      *ratelimit.UpstreamLimiter
}

// Client talks to an Amadeus-style flight-offers API: OAuth2
// client-credentials token endpoint plus a flight-offers search endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://test.api.amadeus.com"
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != ""
}

func (c *Client) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parse token response: %w", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.accessToken
	stale := token == "" || time.Now().After(c.tokenExpiry.Add(-tokenSlack))
	c.mu.Unlock()

	if stale {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

type offersResponse struct {
	Data []offer `json:"data"`
}

type offer struct {
	Price struct {
		Total      string `json:"total"`
		GrandTotal string `json:"grandTotal"`
		Currency   string `json:"currency"`
	} `json:"price"`
	Itineraries []struct {
		Duration string    `json:"duration"`
		Segments []segment `json:"segments"`
	} `json:"itineraries"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

type segment struct {
	Departure struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
}

// SearchOffers queries the live flight-offers endpoint and maps the result to
// travel options. Any failure is returned as an error for the orchestrator to
// treat as a "no live data" signal; no retries are attempted here.
func (c *Client) SearchOffers(ctx context.Context, origin, destination *models.Location, date string, passengers int) ([]models.TravelOption, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	if c.cfg.Limiter != nil {
		if err := c.cfg.Limiter.Wait(ctx, "amadeus"); err != nil {
			return nil, err
		}
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("originLocationCode", origin.ID)
	q.Set("destinationLocationCode", destination.ID)
	q.Set("departureDate", date)
	q.Set("adults", strconv.Itoa(passengers))
	q.Set("nonStop", "false")
	q.Set("max", "8")
	q.Set("currencyCode", "USD")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/v2/shopping/flight-offers?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("flight offers request failed (%d): %s", resp.StatusCode, string(body))
	}

	var offers offersResponse
	if err := json.Unmarshal(body, &offers); err != nil {
		return nil, fmt.Errorf("parse flight offers: %w", err)
	}

	return c.mapOffers(offers, origin, destination)
}

func (c *Client) mapOffers(offers offersResponse, origin, destination *models.Location) ([]models.TravelOption, error) {
	route, err := geo.BuildPath(origin.Coordinates, destination.Coordinates, models.ModeFlights)
	if err != nil {
		return nil, err
	}

	options := make([]models.TravelOption, 0, len(offers.Data))
	for _, o := range offers.Data {
		if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
			continue
		}

		price := parsePrice(o.Price.GrandTotal)
		if price <= 0 {
			price = parsePrice(o.Price.Total)
		}
		if price <= 0 {
			continue
		}

		itinerary := o.Itineraries[0]
		first := itinerary.Segments[0]
		last := itinerary.Segments[len(itinerary.Segments)-1]

		dep, err := parseSegmentTime(first.Departure.At)
		if err != nil {
			continue
		}
		arr, err := parseSegmentTime(last.Arrival.At)
		if err != nil || !arr.After(dep) {
			continue
		}

		code := first.CarrierCode
		if code == "" && len(o.ValidatingAirlineCodes) > 0 {
			code = o.ValidatingAirlineCodes[0]
		}

		duration := parseISODuration(itinerary.Duration)
		if duration <= 0 {
			duration = int(arr.Sub(dep).Minutes())
		}

		curr := o.Price.Currency
		if curr == "" {
			curr = "USD"
		}

		options = append(options, models.TravelOption{
			ID:      "FL-" + uuid.NewString()[:8],
			Carrier: models.Carrier{Code: code, Name: airlineName(code)},
			Vehicle: models.VehicleRef{
				Kind:   models.VehicleFlight,
				Number: code + first.Number,
			},
			Price:                  price,
			Currency:               curr,
			PriceFormatted:         currency.FormatUSD(price),
			DepartureTime:          dep,
			ArrivalTime:            arr,
			DurationMinutes:        duration,
			Origin:                 origin.City,
			Destination:            destination.City,
			Stops:                  len(itinerary.Segments) - 1,
			CarbonKg:               int(math.Round(route.DistanceKm * flightEmissionKgPerKm)),
			Baggage:                "1 cabin bag, 1 checked bag (23kg)",
			OriginCoordinates:      origin.Coordinates,
			DestinationCoordinates: destination.Coordinates,
			RoutePath:              route.Path,
			Markers:                route.Markers,
			DistanceKm:             route.DistanceKm,
		})
	}

	return options, nil
}

func parseSegmentTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable segment time %q", s)
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseISODuration converts an ISO 8601 duration like PT5H30M to minutes.
func parseISODuration(iso string) int {
	iso = strings.TrimPrefix(strings.TrimSpace(iso), "PT")
	if iso == "" {
		return 0
	}

	minutes := 0
	if idx := strings.Index(iso, "H"); idx >= 0 {
		if h, err := strconv.Atoi(iso[:idx]); err == nil {
			minutes += h * 60
		}
		iso = iso[idx+1:]
	}
	if idx := strings.Index(iso, "M"); idx >= 0 {
		if m, err := strconv.Atoi(iso[:idx]); err == nil {
			minutes += m
		}
	}
	return minutes
}

var airlineNames = map[string]string{
	"AA": "American Airlines",
	"AF": "Air France",
	"BA": "British Airways",
	"DL": "Delta Air Lines",
	"EK": "Emirates",
	"JL": "Japan Airlines",
	"KL": "KLM",
	"LH": "Lufthansa",
	"NH": "ANA",
	"QR": "Qatar Airways",
	"SQ": "Singapore Airlines",
	"TK": "Turkish Airlines",
	"UA": "United Airlines",
}

func airlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	if code != "" {
		return code + " Airlines"
	}
	return "Unknown Airline"
}
