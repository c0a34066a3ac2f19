package generator

import "github.com/voyago/travelsearch/internal/models"

// modeProfile bundles the synthesis constants for one transport mode.
type modeProfile struct {
	PricePerKm    float64
	SpeedKmh      float64
	EmissionPerKm float64 // kg CO2-equivalent per km
	VehiclePrefix string
	Carriers      []models.Carrier
	AmenityPool   []string
	BaggageTiers  []string
}

var profiles = map[models.Mode]modeProfile{
	models.ModeFlights: {
		PricePerKm:    0.12,
		SpeedKmh:      800,
		EmissionPerKm: 0.2,
		VehiclePrefix: "FL",
		Carriers: []models.Carrier{
			{Code: "SW", Name: "SkyWays", Color: "#1565c0"},
			{Code: "AJ", Name: "AeroJet", Color: "#c62828"},
			{Code: "CL", Name: "CloudLine", Color: "#6a1b9a"},
			{Code: "PA", Name: "Pacific Air", Color: "#00838f"},
			{Code: "NS", Name: "NimbusSky", Color: "#ef6c00"},
			{Code: "VX", Name: "Vertex Airlines", Color: "#2e7d32"},
			{Code: "HZ", Name: "Horizon Wings", Color: "#4527a0"},
			{Code: "MD", Name: "Meridian Air", Color: "#ad1457"},
			{Code: "AT", Name: "Atlas Aviation", Color: "#37474f"},
		},
		AmenityPool: []string{
			"WiFi", "In-flight entertainment", "Meals included", "Power outlets",
			"Extra legroom", "Priority boarding", "Lounge access", "Flat-bed seats",
		},
		BaggageTiers: []string{
			"1 cabin bag (7kg)",
			"1 cabin bag, 1 checked bag (23kg)",
			"2 cabin bags, 2 checked bags (32kg)",
		},
	},
	models.ModeTrains: {
		PricePerKm:    0.06,
		SpeedKmh:      180,
		EmissionPerKm: 0.05,
		VehiclePrefix: "TR",
		Carriers: []models.Carrier{
			{Code: "EX", Name: "Express Rail", Color: "#1565c0"},
			{Code: "IC", Name: "InterCity Lines", Color: "#c62828"},
			{Code: "VL", Name: "Velocity Rail", Color: "#2e7d32"},
			{Code: "CR", Name: "Continental Railways", Color: "#ef6c00"},
			{Code: "MT", Name: "Metro Transit", Color: "#6a1b9a"},
			{Code: "NR", Name: "Northern Rail", Color: "#00838f"},
		},
		AmenityPool: []string{
			"WiFi", "Dining car", "Power outlets", "Quiet coach",
			"Reclining seats", "Panoramic windows", "First-class lounge",
		},
		BaggageTiers: []string{
			"2 bags included",
			"3 bags included",
			"Unlimited luggage",
		},
	},
	models.ModeBuses: {
		PricePerKm:    0.04,
		SpeedKmh:      80,
		EmissionPerKm: 0.08,
		VehiclePrefix: "BU",
		Carriers: []models.Carrier{
			{Code: "RL", Name: "RoadLink", Color: "#1565c0"},
			{Code: "GH", Name: "Greyhawk Coaches", Color: "#37474f"},
			{Code: "SL", Name: "SwiftLine", Color: "#c62828"},
			{Code: "CC", Name: "CityConnect", Color: "#2e7d32"},
			{Code: "TB", Name: "TransBus", Color: "#ef6c00"},
		},
		AmenityPool: []string{
			"WiFi", "Power outlets", "Reclining seats", "Onboard restroom",
			"Air conditioning", "Snack service",
		},
		BaggageTiers: []string{
			"1 bag (20kg)",
			"2 bags (20kg each)",
			"2 bags + carry-on",
		},
	},
}

func profileFor(mode models.Mode) modeProfile {
	if p, ok := profiles[mode]; ok {
		return p
	}
	return profiles[models.ModeFlights]
}
