package gazetteer

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/voyago/travelsearch/internal/models"
)

// Geocoder is an optional secondary resolution path consulted between a
// gazetteer miss and the synthetic fallback. Errors are swallowed; resolution
// stays total either way.
type Geocoder interface {
	Lookup(ctx context.Context, name string) (*models.Location, error)
}

// Resolver maps free-form location queries to Locations. It never fails:
// anything that misses every source gets a best-effort fallback Location with
// approximated coordinates. Results are cached by the raw query string,
// case-sensitive as typed.
type Resolver struct {
	byName   map[string]models.Location
	byCode   map[string]models.Location
	geocoder Geocoder

	mu    sync.RWMutex
	cache map[string]*models.Location
}

func NewResolver() *Resolver {
	byName, byCode := buildIndex()
	return &Resolver{
		byName: byName,
		byCode: byCode,
		cache:  make(map[string]*models.Location),
	}
}

// WithGeocoder enables the secondary lookup path.
func (r *Resolver) WithGeocoder(g Geocoder) *Resolver {
	r.geocoder = g
	return r
}

// ResolveAny coerces non-string input before resolving, so callers holding a
// location-shaped object or a scalar still get a Location back.
func (r *Resolver) ResolveAny(ctx context.Context, v any) *models.Location {
	return r.Resolve(ctx, models.CoerceLocationString(v, "New York"))
}

var codeInParens = regexp.MustCompile(`\(([A-Za-z]{3})\)`)

func (r *Resolver) Resolve(ctx context.Context, query string) *models.Location {
	r.mu.RLock()
	cached, ok := r.cache[query]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	loc := r.lookup(ctx, query)

	r.mu.Lock()
	// A concurrent search may have resolved the same key; keep the first
	// entry so repeated queries stay reference-identical.
	if existing, ok := r.cache[query]; ok {
		loc = existing
	} else {
		r.cache[query] = loc
	}
	r.mu.Unlock()

	return loc
}

func (r *Resolver) lookup(ctx context.Context, query string) *models.Location {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.fallback(query)
	}

	if loc, ok := r.byName[q]; ok {
		return &loc
	}

	for name, loc := range r.byName {
		if strings.Contains(q, name) || strings.Contains(name, q) {
			loc := loc
			return &loc
		}
	}

	if len(q) == 3 && isAlpha(q) {
		if loc, ok := r.byCode[strings.ToUpper(q)]; ok {
			return &loc
		}
	}

	if r.geocoder != nil {
		if loc, err := r.geocoder.Lookup(ctx, strings.TrimSpace(query)); err == nil && loc != nil {
			return loc
		}
	}

	return r.fallback(query)
}

// fallback constructs a Location for queries nothing recognized. A (XXX)
// style code embedded in the input becomes the ID and is stripped from the
// display name; coordinates come from the approximate city table, defaulting
// to New York.
func (r *Resolver) fallback(query string) *models.Location {
	name := strings.TrimSpace(query)

	code := ""
	if m := codeInParens.FindStringSubmatch(name); m != nil {
		code = strings.ToUpper(m[1])
		name = strings.TrimSpace(codeInParens.ReplaceAllString(name, ""))
	}

	if name == "" {
		name = "Unknown"
	}
	if code == "" {
		code = synthesizeCode(name)
	}

	coords := defaultFallbackCoords
	if c, ok := approxCityCoords[strings.ToLower(name)]; ok {
		coords = c
	}

	return &models.Location{
		ID:          code,
		Name:        name,
		City:        name,
		Country:     "",
		Type:        models.LocationCity,
		Coordinates: coords,
		IsFallback:  true,
	}
}

// Reset clears the resolution cache. Tests use it; the server never does.
func (r *Resolver) Reset() {
	r.mu.Lock()
	r.cache = make(map[string]*models.Location)
	r.mu.Unlock()
}

func synthesizeCode(name string) string {
	var b strings.Builder
	for _, c := range strings.ToUpper(name) {
		if c >= 'A' && c <= 'Z' {
			b.WriteRune(c)
			if b.Len() == 3 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "XXX"
	}
	return b.String()
}

func isAlpha(s string) bool {
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
