package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voyago/travelsearch/internal/export"
	"github.com/voyago/travelsearch/internal/filter"
	"github.com/voyago/travelsearch/internal/models"
	"github.com/voyago/travelsearch/internal/search"
)

type SearchHandler struct {
	service *search.Service
}

func NewSearchHandler(service *search.Service) *SearchHandler {
	return &SearchHandler{service: service}
}

// searchPayload mirrors the loose request shapes legacy front ends send:
// origin/destination may be strings or location-shaped objects, dates may be
// in any of several formats, and travelers is accepted as an alias for
// passengers.
type searchPayload struct {
	Origin        any                   `json:"origin"`
	Destination   any                   `json:"destination"`
	DepartureDate any                   `json:"departure_date"`
	ReturnDate    any                   `json:"return_date"`
	Passengers    int                   `json:"passengers"`
	Travelers     int                   `json:"travelers"`
	Mode          string                `json:"mode"`
	Filters       *models.SearchFilters `json:"filters,omitempty"`
	SortBy        string                `json:"sort_by,omitempty"`
	SortOrder     string                `json:"sort_order,omitempty"`
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var payload searchPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	passengers := payload.Passengers
	if passengers <= 0 {
		passengers = payload.Travelers
	}

	result := h.service.Options(ctx, payload.Origin, payload.Destination,
		payload.DepartureDate, payload.ReturnDate, passengers, payload.Mode)

	req := result.Request
	req.Filters = payload.Filters
	req.SortBy = payload.SortBy
	req.SortOrder = payload.SortOrder

	filtered := filter.Apply(result.Options, req.Filters, req.SortBy, req.SortOrder)

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: buildSearchCriteria(req),
		Metadata: models.SearchMetadata{
			TotalResults: len(filtered),
			Source:       result.Source,
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     result.CacheHit,
		},
		Options: filtered,
	})
}

// Summary runs the same search and returns a PDF rendering of the results.
func (h *SearchHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	var payload searchPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	passengers := payload.Passengers
	if passengers <= 0 {
		passengers = payload.Travelers
	}

	result := h.service.Options(ctx, payload.Origin, payload.Destination,
		payload.DepartureDate, payload.ReturnDate, passengers, payload.Mode)

	pdf, err := export.RenderSummary(result.Request, result.Options)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "export_error",
			Message: "Failed to render summary: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="travel-options.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func buildSearchCriteria(req models.SearchRequest) models.SearchCriteria {
	return models.SearchCriteria{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    req.Passengers,
		Mode:          req.Mode,
		Filters:       req.Filters,
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
	}
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
