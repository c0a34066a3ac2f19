package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/voyago/travelsearch/internal/models"
	"github.com/voyago/travelsearch/internal/ranking"
)

func Apply(options []models.TravelOption, filters *models.SearchFilters, sortBy, sortOrder string) []models.TravelOption {
	filtered := applyFilters(options, filters)

	if sortBy == "best_value" {
		filtered = ranking.CalculateScores(filtered)
	}

	sorted := applySort(filtered, sortBy, sortOrder)

	return sorted
}

func applyFilters(options []models.TravelOption, filters *models.SearchFilters) []models.TravelOption {
	if filters == nil {
		return options
	}

	result := make([]models.TravelOption, 0, len(options))

	for _, opt := range options {
		if matchesFilters(opt, filters) {
			result = append(result, opt)
		}
	}

	return result
}

func matchesFilters(opt models.TravelOption, filters *models.SearchFilters) bool {
	if filters.PriceMin != nil && opt.Price < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && opt.Price > *filters.PriceMax {
		return false
	}

	if filters.MaxStops != nil && opt.Stops > *filters.MaxStops {
		return false
	}

	if len(filters.Carriers) > 0 {
		found := false
		for _, carrier := range filters.Carriers {
			if strings.EqualFold(opt.Carrier.Code, carrier) || strings.EqualFold(opt.Carrier.Name, carrier) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if filters.DepartureTimeMin != nil {
		minTime, err := parseTimeOfDay(*filters.DepartureTimeMin)
		if err == nil {
			depTime := opt.DepartureTime.Hour()*60 + opt.DepartureTime.Minute()
			if depTime < minTime {
				return false
			}
		}
	}
	if filters.DepartureTimeMax != nil {
		maxTime, err := parseTimeOfDay(*filters.DepartureTimeMax)
		if err == nil {
			depTime := opt.DepartureTime.Hour()*60 + opt.DepartureTime.Minute()
			if depTime > maxTime {
				return false
			}
		}
	}

	if filters.MaxDuration != nil && opt.DurationMinutes > *filters.MaxDuration {
		return false
	}

	return true
}

func parseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func applySort(options []models.TravelOption, sortBy, sortOrder string) []models.TravelOption {
	if len(options) == 0 {
		return options
	}

	ascending := strings.ToLower(sortOrder) != "desc"

	switch strings.ToLower(sortBy) {
	case "price":
		sort.Slice(options, func(i, j int) bool {
			if ascending {
				return options[i].Price < options[j].Price
			}
			return options[i].Price > options[j].Price
		})

	case "duration":
		sort.Slice(options, func(i, j int) bool {
			if ascending {
				return options[i].DurationMinutes < options[j].DurationMinutes
			}
			return options[i].DurationMinutes > options[j].DurationMinutes
		})

	case "departure":
		sort.Slice(options, func(i, j int) bool {
			if ascending {
				return options[i].DepartureTime.Before(options[j].DepartureTime)
			}
			return options[i].DepartureTime.After(options[j].DepartureTime)
		})

	case "best_value":
		sort.Slice(options, func(i, j int) bool {
			if ascending {
				return options[i].BestValueScore < options[j].BestValueScore
			}
			return options[i].BestValueScore > options[j].BestValueScore
		})

	case "stops":
		sort.Slice(options, func(i, j int) bool {
			if ascending {
				return options[i].Stops < options[j].Stops
			}
			return options[i].Stops > options[j].Stops
		})

	default:
		// Leave the pipeline's own ordering in place. The generator
		// deliberately produces a noisy near-tie order; re-sorting here
		// would erase it.
	}

	return options
}
