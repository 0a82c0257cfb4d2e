package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
	"portfolio/internal/validate"
)

// RecommendationHandler handles recommendation endpoints.
type RecommendationHandler struct {
	recService service.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(recService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recService: recService}
}

// RecommendationResponse projects a stored recommendation into the external
// response shape: every persisted field plus derived display values.
type RecommendationResponse struct {
	ID                   string     `json:"id"`
	RecommenderName      string     `json:"recommender_name"`
	RecommenderTitle     string     `json:"recommender_title"`
	RecommenderCompany   string     `json:"recommender_company"`
	RecommenderLocation  string     `json:"recommender_location,omitempty"`
	RecommendationText   string     `json:"recommendation_text"`
	ProjectContext       string     `json:"project_context,omitempty"`
	LinkedinURL          string     `json:"linkedin_url,omitempty"`
	Email                string     `json:"email,omitempty"`
	Rating               int        `json:"rating"`
	RatingStars          string     `json:"rating_stars"`
	RecommenderFullTitle string     `json:"recommender_full_title"`
	ShortRecommendation  string     `json:"short_recommendation"`
	RecommendationDate   string     `json:"recommendation_date"`
	IsDeleted            bool       `json:"is_deleted"`
	DeletedAt            *time.Time `json:"deleted_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func toResponse(rec *model.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ID:                   rec.ID.String(),
		RecommenderName:      rec.RecommenderName,
		RecommenderTitle:     rec.RecommenderTitle,
		RecommenderCompany:   rec.RecommenderCompany,
		RecommenderLocation:  rec.RecommenderLocation,
		RecommendationText:   rec.RecommendationText,
		ProjectContext:       rec.ProjectContext,
		LinkedinURL:          rec.LinkedinURL,
		Email:                rec.Email,
		Rating:               rec.Rating,
		RatingStars:          model.RatingStars(rec.Rating),
		RecommenderFullTitle: rec.FullTitle(),
		ShortRecommendation:  rec.ShortText(),
		RecommendationDate:   rec.RecommendationDate.Format(validate.DateLayout),
		IsDeleted:            rec.IsDeleted,
		DeletedAt:            rec.DeletedAt,
		CreatedAt:            rec.CreatedAt,
		UpdatedAt:            rec.UpdatedAt,
	}
}

func toResponseList(recs []model.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for i := range recs {
		out = append(out, toResponse(&recs[i]))
	}
	return out
}

// List godoc
// @Summary List all recommendations
// @Description Returns every non-deleted recommendation ordered by recommendation date descending.
// @Tags recommendations
// @Produce json
// @Success 200 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router / [get]
func (h *RecommendationHandler) List(c echo.Context) error {
	recs, err := h.recService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.Body)
	}
	return c.JSON(http.StatusOK, errors.OK("recommendations retrieved", toResponseList(recs)))
}

// Create godoc
// @Summary Create a recommendation
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Recommendation fields"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /create [post]
func (h *RecommendationHandler) Create(c echo.Context) error {
	var raw map[string]interface{}
	if err := c.Bind(&raw); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Fail("invalid request body"))
	}

	rec, err := h.recService.Create(c.Request().Context(), raw)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.Body)
	}
	return c.JSON(http.StatusCreated, errors.OK("recommendation created", toResponse(rec)))
}

// Get godoc
// @Summary Get a recommendation by id
// @Tags recommendations
// @Produce json
// @Param id path string true "Recommendation ID"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /{id} [get]
func (h *RecommendationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.Fail("invalid recommendation id"))
	}

	rec, err := h.recService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.Body)
	}
	return c.JSON(http.StatusOK, errors.OK("recommendation retrieved", toResponse(rec)))
}

// Update godoc
// @Summary Update a recommendation
// @Description Revalidates the full required field set and overlays it onto the stored record.
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recommendation ID"
// @Param request body map[string]interface{} true "Recommendation fields"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /{id} [put]
func (h *RecommendationHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.Fail("invalid recommendation id"))
	}

	var raw map[string]interface{}
	if err := c.Bind(&raw); err != nil {
		return c.JSON(http.StatusBadRequest, errors.Fail("invalid request body"))
	}

	rec, err := h.recService.Update(c.Request().Context(), id, raw)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.Body)
	}
	return c.JSON(http.StatusOK, errors.OK("recommendation updated", toResponse(rec)))
}
