package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/seed"
	"portfolio/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	recService service.RecommendationService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(recService service.RecommendationService) *SeedHandler {
	return &SeedHandler{recService: recService}
}

// SeedResponse reports how many fixtures were inserted.
type SeedResponse struct {
	Created int `json:"created"`
	Total   int `json:"total"`
}

// SeedRecommendations godoc
// @Summary Load the built-in sample recommendations
// @Description Inserts the sample fixtures, skipping any that already exist.
// @Tags seed
// @Produce json
// @Success 200 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /seed/recommendations [get]
func (h *SeedHandler) SeedRecommendations(c echo.Context) error {
	fixtures := seed.Recommendations()
	created, err := h.recService.Seed(c.Request().Context(), fixtures)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.Body)
	}
	return c.JSON(http.StatusOK, errors.OK("sample recommendations seeded", SeedResponse{
		Created: created,
		Total:   len(fixtures),
	}))
}
