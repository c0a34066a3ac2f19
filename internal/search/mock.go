package search

import (
	"time"

	"github.com/voyago/travelsearch/internal/models"
	"github.com/voyago/travelsearch/pkg/currency"
)

// Static last-resort options, one small hand-authored set per mode. They are
// served only when the whole pipeline fails, so the UI never shows an empty
// error state.

type mockSeed struct {
	carrier  models.Carrier
	kind     models.VehicleKind
	number   string
	price    float64
	depHour  int
	duration int
	stops    int
	carbonKg int
	baggage  string
}

var mockSeeds = map[models.Mode][]mockSeed{
	models.ModeFlights: {
		{models.Carrier{Code: "SW", Name: "SkyWays", Color: "#1565c0"}, models.VehicleFlight, "SW101", 249, 8, 330, 0, 560, "1 cabin bag, 1 checked bag (23kg)"},
		{models.Carrier{Code: "AJ", Name: "AeroJet", Color: "#c62828"}, models.VehicleFlight, "AJ220", 189, 12, 395, 1, 560, "1 cabin bag (7kg)"},
		{models.Carrier{Code: "CL", Name: "CloudLine", Color: "#6a1b9a"}, models.VehicleFlight, "CL315", 312, 16, 340, 0, 560, "2 cabin bags, 2 checked bags (32kg)"},
	},
	models.ModeTrains: {
		{models.Carrier{Code: "EX", Name: "Express Rail", Color: "#1565c0"}, models.VehicleTrain, "EX404", 98, 7, 540, 1, 140, "2 bags included"},
		{models.Carrier{Code: "IC", Name: "InterCity Lines", Color: "#c62828"}, models.VehicleTrain, "IC512", 126, 13, 510, 0, 140, "3 bags included"},
	},
	models.ModeBuses: {
		{models.Carrier{Code: "RL", Name: "RoadLink", Color: "#1565c0"}, models.VehicleBus, "RL77", 45, 6, 720, 1, 224, "1 bag (20kg)"},
		{models.Carrier{Code: "GH", Name: "Greyhawk Coaches", Color: "#37474f"}, models.VehicleBus, "GH21", 52, 9, 700, 0, 224, "2 bags (20kg each)"},
		{models.Carrier{Code: "SL", Name: "SwiftLine", Color: "#c62828"}, models.VehicleBus, "SL33", 39, 21, 760, 2, 224, "1 bag (20kg)"},
	},
}

// mockOptions builds the static fallback set for a request, with the caller's
// origin and destination display names patched in.
func mockOptions(req models.SearchRequest) []models.TravelOption {
	seeds, ok := mockSeeds[req.Mode]
	if !ok {
		seeds = mockSeeds[models.ModeFlights]
	}

	day, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		day = time.Now().AddDate(0, 0, 1)
	}

	options := make([]models.TravelOption, 0, len(seeds))
	for _, seed := range seeds {
		departure := time.Date(day.Year(), day.Month(), day.Day(), seed.depHour, 0, 0, 0, time.UTC)
		options = append(options, models.TravelOption{
			ID:              string(seed.kind) + "-mock-" + seed.number,
			Carrier:         seed.carrier,
			Vehicle:         models.VehicleRef{Kind: seed.kind, Number: seed.number},
			Price:           seed.price,
			Currency:        "USD",
			PriceFormatted:  currency.FormatUSD(seed.price),
			DepartureTime:   departure,
			ArrivalTime:     departure.Add(time.Duration(seed.duration) * time.Minute),
			DurationMinutes: seed.duration,
			Origin:          req.Origin,
			Destination:     req.Destination,
			Stops:           seed.stops,
			CarbonKg:        seed.carbonKg,
			Baggage:         seed.baggage,
		})
	}

	return options
}
