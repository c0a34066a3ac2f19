package search

import (
	"context"
	"log"

	"github.com/voyago/travelsearch/internal/amadeus"
	"github.com/voyago/travelsearch/internal/cache"
	"github.com/voyago/travelsearch/internal/gazetteer"
	"github.com/voyago/travelsearch/internal/generator"
	"github.com/voyago/travelsearch/internal/geo"
	"github.com/voyago/travelsearch/internal/models"
)

// Service is the orchestrator for the fallback chain: live flight API →
// procedural generator → static mock. Its entry points never return an error
// and never return an empty result set; every failure mode degrades to
// progressively less live data.
type Service struct {
	resolver *gazetteer.Resolver
	flights  *amadeus.Client
	gen      *generator.Generator
	cache    cache.Cache
}

// Result carries the options plus the provenance metadata the HTTP layer
// reports.
type Result struct {
	Request  models.SearchRequest
	Options  []models.TravelOption
	Source   models.OptionSource
	CacheHit bool
}

// New wires the orchestrator. flights may be nil or unconfigured; the live
// rung is skipped then. The cache holds live results only.
func New(resolver *gazetteer.Resolver, flights *amadeus.Client, gen *generator.Generator, c cache.Cache) *Service {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	return &Service{
		resolver: resolver,
		flights:  flights,
		gen:      gen,
		cache:    c,
	}
}

// Options accepts the loose legacy call shape: origin may be a string, a
// location-like object, or a whole search form carrying every field.
// Cancellation is the caller's ctx; a cancelled live lookup just drops to the
// generator.
func (s *Service) Options(ctx context.Context, origin, destination, departureDate, returnDate any, passengers int, mode string) Result {
	req := models.NormalizeRequest(origin, destination, departureDate, returnDate, passengers, mode)
	return s.Search(ctx, req)
}

// Search runs the pipeline for a canonical request.
func (s *Service) Search(ctx context.Context, req models.SearchRequest) (result Result) {
	result.Request = req

	defer func() {
		if r := recover(); r != nil {
			log.Printf("search pipeline panicked, serving mock options: %v", r)
			result.Options = mockOptions(req)
			result.Source = models.SourceMock
			result.CacheHit = false
		}
	}()

	origin := s.resolver.Resolve(ctx, req.Origin)
	destination := s.resolver.Resolve(ctx, req.Destination)

	if req.Mode == models.ModeFlights && s.flights != nil && s.flights.Configured() {
		key := cache.Key{
			OriginID:      origin.ID,
			DestinationID: destination.ID,
			DepartureDate: req.DepartureDate,
			Passengers:    req.Passengers,
			Mode:          req.Mode,
		}

		if cached, ok := s.cache.Get(ctx, key); ok && len(cached) > 0 {
			result.Options = patchNames(cached, origin.City, destination.City)
			result.Source = models.SourceLive
			result.CacheHit = true
			return result
		}

		live, err := s.flights.SearchOffers(ctx, origin, destination, req.DepartureDate, req.Passengers)
		if err == nil && len(live) > 0 {
			if err := s.cache.Set(ctx, key, live); err != nil {
				log.Printf("live results cache write failed: %v", err)
			}
			result.Options = live
			result.Source = models.SourceLive
			return result
		}
		if err != nil {
			// Not an error from the caller's perspective; the generator
			// takes over.
			log.Printf("live flight lookup unavailable (%v), falling back to generator", err)
		}
	}

	route, err := geo.BuildPath(origin.Coordinates, destination.Coordinates, req.Mode)
	if err != nil {
		log.Printf("route build failed (%v), serving mock options", err)
		result.Options = mockOptions(req)
		result.Source = models.SourceMock
		return result
	}

	result.Options = s.gen.Generate(origin, destination, req.DepartureDate, req.Passengers, req.Mode, route)
	result.Source = models.SourceGenerated
	return result
}

func patchNames(options []models.TravelOption, origin, destination string) []models.TravelOption {
	patched := make([]models.TravelOption, len(options))
	for i, opt := range options {
		opt.Origin = origin
		opt.Destination = destination
		patched[i] = opt
	}
	return patched
}
