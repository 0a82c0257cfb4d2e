package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/service"
)

// AdminHandler exposes the administrative capabilities that are not part of
// the public surface: soft delete, restore, and aggregate stats.
type AdminHandler struct {
	recService service.RecommendationService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(recService service.RecommendationService) *AdminHandler {
	return &AdminHandler{recService: recService}
}

// SoftDelete godoc
// @Summary Soft delete a recommendation
// @Description Marks a recommendation as deleted. The row is retained and can be restored.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recommendation ID"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /admin/recommendations/{id}/delete [post]
func (h *AdminHandler) SoftDelete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.Fail("invalid recommendation id"))
	}

	if err := h.recService.SoftDelete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.Body)
	}
	return c.JSON(http.StatusOK, errors.OK("recommendation deleted", nil))
}

// Restore godoc
// @Summary Restore a soft-deleted recommendation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recommendation ID"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /admin/recommendations/{id}/restore [post]
func (h *AdminHandler) Restore(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.Fail("invalid recommendation id"))
	}

	if err := h.recService.Restore(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.Body)
	}
	return c.JSON(http.StatusOK, errors.OK("recommendation restored", nil))
}

// Stats godoc
// @Summary Recommendation statistics
// @Description Returns the count of visible recommendations and their average rating.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /admin/recommendations/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.recService.Stats(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.Body)
	}
	return c.JSON(http.StatusOK, errors.OK("stats retrieved", stats))
}
