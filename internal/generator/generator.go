package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/travelsearch/internal/models"
	"github.com/voyago/travelsearch/pkg/currency"
)

// minimumBaseFare keeps prices positive even for degenerate near-zero
// distances (origin resolved to the same coordinates as the destination).
const minimumBaseFare = 15.0

// Generator procedurally synthesizes plausible travel options when no live
// data is available. It always returns between 4 and 8 options and never
// fails.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func NewDefault() *Generator {
	return New(time.Now().UnixNano())
}

// Generate fabricates options for the given resolved endpoints and route.
// Inputs are assumed pre-validated by the orchestrator.
func (g *Generator) Generate(origin, destination *models.Location, departureDate string, passengers int, mode models.Mode, route models.RoutePath) []models.TravelOption {
	g.mu.Lock()
	defer g.mu.Unlock()

	profile := profileFor(mode)
	distance := route.DistanceKm

	basePrice := distance * profile.PricePerKm
	if basePrice < minimumBaseFare {
		basePrice = minimumBaseFare
	}
	baseDuration := distance / profile.SpeedKmh * 60

	// Bulk surcharge curve: each extra passenger adds 80% of a single fare.
	passengerFactor := 1 + float64(passengers-1)*0.8

	day, err := time.Parse("2006-01-02", departureDate)
	if err != nil {
		day = time.Now().AddDate(0, 0, 1)
	}

	count := 4 + g.rng.Intn(5)
	options := make([]models.TravelOption, 0, count)

	for i := 0; i < count; i++ {
		carrier := profile.Carriers[g.rng.Intn(len(profile.Carriers))]

		hour := 6 + g.rng.Intn(14)
		minute := g.rng.Intn(60)
		departure := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)

		duration := int(baseDuration) + g.rng.Intn(61) - 30
		if duration < 30 {
			duration = 30
		}
		arrival := departure.Add(time.Duration(duration) * time.Minute)

		priceFactor := 1.0
		if hour >= 10 && hour <= 18 {
			priceFactor *= 1.2
		}
		premium := g.rng.Float64() < 0.15
		if premium {
			priceFactor *= 1.15
		}
		priceFactor *= 0.9 + g.rng.Float64()*0.3

		price := math.Round(basePrice*priceFactor*passengerFactor*100) / 100

		stops := 0
		if i%3 != 0 {
			stops = 1 + g.rng.Intn(2)
		}

		tier := priceTier(priceFactor, premium)

		opt := models.TravelOption{
			ID:      fmt.Sprintf("%s-%s", profile.VehiclePrefix, uuid.NewString()[:8]),
			Carrier: carrier,
			Vehicle: models.VehicleRef{
				Kind:   mode.VehicleKind(),
				Number: fmt.Sprintf("%s%d", carrier.Code, 100+g.rng.Intn(900)),
			},
			Price:                  price,
			Currency:               "USD",
			PriceFormatted:         currency.FormatUSD(price),
			DepartureTime:          departure,
			ArrivalTime:            arrival,
			DurationMinutes:        duration,
			Origin:                 origin.City,
			Destination:            destination.City,
			Stops:                  stops,
			CarbonKg:               int(math.Round(distance * profile.EmissionPerKm)),
			Baggage:                profile.BaggageTiers[tier],
			Amenities:              g.pickAmenities(profile.AmenityPool, tier),
			OriginCoordinates:      origin.Coordinates,
			DestinationCoordinates: destination.Coordinates,
			RoutePath:              route.Path,
			Markers:                route.Markers,
			DistanceKm:             distance,
		}

		if stops > 0 {
			opt.Waypoints = sampleWaypoints(route.Path, stops)
		}

		options = append(options, opt)
	}

	g.sortNoisy(options)

	return options
}

// priceTier buckets an option by how expensive its random factors made it,
// which drives baggage allowance and amenity count.
func priceTier(priceFactor float64, premium bool) int {
	switch {
	case premium || priceFactor > 1.25:
		return 2
	case priceFactor > 1.0:
		return 1
	default:
		return 0
	}
}

func (g *Generator) pickAmenities(pool []string, tier int) []string {
	count := 2 + tier*2
	if count > len(pool) {
		count = len(pool)
	}

	picked := make([]string, 0, count)
	for _, idx := range g.rng.Perm(len(pool))[:count] {
		picked = append(picked, pool[idx])
	}
	return picked
}

// sampleWaypoints takes evenly spaced points along the route polyline, one
// per stop.
func sampleWaypoints(path []models.Coordinates, stops int) []models.Coordinates {
	if len(path) < 2 || stops <= 0 {
		return nil
	}

	waypoints := make([]models.Coordinates, 0, stops)
	for j := 1; j <= stops; j++ {
		pos := float64(j) / float64(stops+1) * float64(len(path)-1)
		waypoints = append(waypoints, path[int(math.Round(pos))])
	}
	return waypoints
}

// sortNoisy orders options by ascending price, then perturbs the relative
// order of near-ties (within 10%) so results never present a perfectly
// deterministic price ladder.
func (g *Generator) sortNoisy(options []models.TravelOption) {
	sort.Slice(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})

	for i := 1; i < len(options); i++ {
		hi := math.Max(options[i].Price, options[i-1].Price)
		if hi > 0 && math.Abs(options[i].Price-options[i-1].Price) <= 0.1*hi && g.rng.Float64() < 0.5 {
			options[i], options[i-1] = options[i-1], options[i]
		}
	}
}
