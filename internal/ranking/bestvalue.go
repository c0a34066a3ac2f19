package ranking

import (
	"math"

	"github.com/voyago/travelsearch/internal/models"
)

const (
	PriceWeight    = 0.5
	DurationWeight = 0.3
	StopsWeight    = 0.2
)

func CalculateScores(options []models.TravelOption) []models.TravelOption {
	if len(options) == 0 {
		return options
	}

	maxPrice := findMaxPrice(options)
	maxDuration := findMaxDuration(options)

	result := make([]models.TravelOption, len(options))
	for i, opt := range options {
		result[i] = opt
		result[i].BestValueScore = CalculateBestValue(opt, maxPrice, maxDuration)
	}

	return result
}

// Lower score = better value
func CalculateBestValue(opt models.TravelOption, maxPrice, maxDuration float64) float64 {
	priceScore := 0.0
	if maxPrice > 0 {
		priceScore = (opt.Price / maxPrice) * 100
	}

	durationScore := 0.0
	if maxDuration > 0 {
		durationScore = (float64(opt.DurationMinutes) / maxDuration) * 100
	}

	stopsScore := float64(opt.Stops) * 15
	score := (priceScore * PriceWeight) + (durationScore * DurationWeight) + (stopsScore * StopsWeight)

	return math.Round(score*100) / 100
}

func findMaxPrice(options []models.TravelOption) float64 {
	maxPrice := 0.0
	for _, opt := range options {
		if opt.Price > maxPrice {
			maxPrice = opt.Price
		}
	}
	return maxPrice
}

func findMaxDuration(options []models.TravelOption) float64 {
	maxDuration := 0.0
	for _, opt := range options {
		dur := float64(opt.DurationMinutes)
		if dur > maxDuration {
			maxDuration = dur
		}
	}
	return maxDuration
}
