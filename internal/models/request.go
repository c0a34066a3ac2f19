package models

import (
	"fmt"
	"strings"
	"time"
)

type SearchFilters struct {
	PriceMin         *float64 `json:"price_min,omitempty"`
	PriceMax         *float64 `json:"price_max,omitempty"`
	MaxStops         *int     `json:"max_stops,omitempty"`
	Carriers         []string `json:"carriers,omitempty"`
	DepartureTimeMin *string  `json:"departure_time_min,omitempty"`
	DepartureTimeMax *string  `json:"departure_time_max,omitempty"`
	MaxDuration      *int     `json:"max_duration,omitempty"`
}

// SearchRequest is the canonical typed request every accepted call shape is
// normalized into before it reaches the pipeline.
type SearchRequest struct {
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	DepartureDate string         `json:"departure_date"`
	ReturnDate    string         `json:"return_date,omitempty"`
	Passengers    int            `json:"passengers"`
	Mode          Mode           `json:"mode"`
	Filters       *SearchFilters `json:"filters,omitempty"`
	SortBy        string         `json:"sort_by,omitempty"`
	SortOrder     string         `json:"sort_order,omitempty"`
}

func (r *SearchRequest) Validate() error {
	if r.Origin == "" {
		return ErrMissingOrigin
	}
	if r.Destination == "" {
		return ErrMissingDestination
	}
	if r.DepartureDate == "" {
		r.DepartureDate = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	}
	if r.Passengers <= 0 {
		r.Passengers = 1
	}
	if r.Mode == "" {
		r.Mode = ModeFlights
	}
	if r.SortBy == "" {
		r.SortBy = "price"
	}
	if r.SortOrder == "" {
		r.SortOrder = "asc"
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin      ValidationError = "origin is required"
	ErrMissingDestination ValidationError = "destination is required"
)

const (
	defaultOrigin      = "New York"
	defaultDestination = "Los Angeles"
)

// NormalizeRequest maps any accepted legacy call shape into a canonical
// SearchRequest. It tolerates a whole form object passed as the origin
// argument, location-like objects in place of strings, missing or unparsable
// dates, and non-positive passenger counts. It never fails.
func NormalizeRequest(origin, destination, departureDate, returnDate any, passengers int, mode string) SearchRequest {
	// Legacy callers pass the entire search form as the first positional
	// argument. Destructure it transparently before anything else.
	if form, ok := origin.(map[string]any); ok {
		if hasKey(form, "origin") || hasKey(form, "destination") {
			origin = form["origin"]
			destination = form["destination"]
			if v, ok := form["departureDate"]; ok {
				departureDate = v
			}
			if v, ok := form["returnDate"]; ok {
				returnDate = v
			}
			if v, ok := form["travelers"]; ok {
				passengers = coerceInt(v, passengers)
			} else if v, ok := form["passengers"]; ok {
				passengers = coerceInt(v, passengers)
			}
			if v, ok := form["mode"].(string); ok && mode == "" {
				mode = v
			}
		}
	}

	departure := coerceDate(departureDate, time.Now().AddDate(0, 0, 1))
	departureParsed, _ := time.Parse("2006-01-02", departure)
	ret := coerceDate(returnDate, departureParsed.AddDate(0, 0, 7))

	if passengers <= 0 {
		passengers = 1
	}

	return SearchRequest{
		Origin:        CoerceLocationString(origin, defaultOrigin),
		Destination:   CoerceLocationString(destination, defaultDestination),
		DepartureDate: departure,
		ReturnDate:    ret,
		Passengers:    passengers,
		Mode:          ParseMode(mode),
	}
}

// CoerceLocationString extracts a usable display string from whatever the
// caller handed us: a plain string, a location-shaped object, or a scalar.
func CoerceLocationString(v any, fallback string) string {
	switch t := v.(type) {
	case nil:
		return fallback
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return s
		}
		return fallback
	case map[string]any:
		for _, key := range []string{"value", "name", "city", "id", "label"} {
			if s, ok := t[key].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
		return fallback
	case fmt.Stringer:
		if s := strings.TrimSpace(t.String()); s != "" {
			return s
		}
		return fallback
	case int, int32, int64, float32, float64, bool:
		return fmt.Sprint(t)
	default:
		return fallback
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

func coerceDate(v any, def time.Time) string {
	switch t := v.(type) {
	case time.Time:
		if !t.IsZero() {
			return t.Format("2006-01-02")
		}
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.Format("2006-01-02")
			}
		}
	}
	return def.Format("2006-01-02")
}

func coerceInt(v any, def int) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(t), "%d", &n); err == nil {
			return n
		}
	}
	return def
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}
