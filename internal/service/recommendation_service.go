package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"portfolio/internal/cache"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/validate"
)

const recommendationCacheTTL = 5 * time.Minute

// RecommendationStats summarizes the visible recommendation set.
type RecommendationStats struct {
	Total         int64           `json:"total"`
	AverageRating decimal.Decimal `json:"average_rating"`
}

// RecommendationService handles recommendation operations: it validates raw
// input, persists records, and hides the soft-delete mechanics from callers.
type RecommendationService interface {
	Create(ctx context.Context, raw map[string]interface{}) (*model.Recommendation, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Recommendation, error)
	Update(ctx context.Context, id uuid.UUID, raw map[string]interface{}) (*model.Recommendation, error)
	List(ctx context.Context) ([]model.Recommendation, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*RecommendationStats, error)
	Seed(ctx context.Context, fixtures []model.Recommendation) (int, error)
}

type recommendationService struct {
	repo  repository.RecommendationRepository
	cache *cache.Client
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(repo repository.RecommendationRepository, cache *cache.Client) RecommendationService {
	return &recommendationService{repo: repo, cache: cache}
}

func (s *recommendationService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("recommendation:%s", id.String())
}

// Create validates raw input and persists a new recommendation.
func (s *recommendationService) Create(ctx context.Context, raw map[string]interface{}) (*model.Recommendation, error) {
	input, fieldErrs := validate.Recommendation(raw)
	if fieldErrs != nil {
		return nil, errors.NewValidationError(fieldErrs)
	}

	rec := &model.Recommendation{
		RecommenderName:     input.RecommenderName,
		RecommenderTitle:    input.RecommenderTitle,
		RecommenderCompany:  input.RecommenderCompany,
		RecommenderLocation: input.RecommenderLocation,
		RecommendationText:  input.RecommendationText,
		ProjectContext:      input.ProjectContext,
		LinkedinURL:         input.LinkedinURL,
		Email:               input.Email,
		Rating:              input.Rating,
		RecommendationDate:  input.RecommendationDate,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}
	return rec, nil
}

// Get retrieves a non-deleted recommendation by ID with caching.
func (s *recommendationService) Get(ctx context.Context, id uuid.UUID) (*model.Recommendation, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Recommendation
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRecommendationNotFound
		}
		return nil, fmt.Errorf("find recommendation: %w", err)
	}

	if payload, err := json.Marshal(rec); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, recommendationCacheTTL)
	}
	return rec, nil
}

// Update loads an existing non-deleted recommendation, revalidates the full
// field set, overlays it and persists. Concurrent updates to the same record
// are last-write-wins.
func (s *recommendationService) Update(ctx context.Context, id uuid.UUID, raw map[string]interface{}) (*model.Recommendation, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRecommendationNotFound
		}
		return nil, fmt.Errorf("find recommendation: %w", err)
	}

	input, fieldErrs := validate.Recommendation(raw)
	if fieldErrs != nil {
		return nil, errors.NewValidationError(fieldErrs)
	}

	rec.RecommenderName = input.RecommenderName
	rec.RecommenderTitle = input.RecommenderTitle
	rec.RecommenderCompany = input.RecommenderCompany
	rec.RecommenderLocation = input.RecommenderLocation
	rec.RecommendationText = input.RecommendationText
	rec.ProjectContext = input.ProjectContext
	rec.LinkedinURL = input.LinkedinURL
	rec.Email = input.Email
	rec.Rating = input.Rating
	rec.RecommendationDate = input.RecommendationDate

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("update recommendation: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return rec, nil
}

// List returns all non-deleted recommendations in display order.
func (s *recommendationService) List(ctx context.Context) ([]model.Recommendation, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	return recs, nil
}

// SoftDelete marks a recommendation as deleted.
func (s *recommendationService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRecommendationNotFound
		}
		return fmt.Errorf("soft delete recommendation: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Restore brings a soft-deleted recommendation back into the visible set.
func (s *recommendationService) Restore(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Restore(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRecommendationNotFound
		}
		return fmt.Errorf("restore recommendation: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Stats counts the visible recommendations and averages their ratings.
func (s *recommendationService) Stats(ctx context.Context) (*RecommendationStats, error) {
	total, avg, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommendation stats: %w", err)
	}
	return &RecommendationStats{
		Total:         total,
		AverageRating: decimal.NewFromFloat(avg).Round(2),
	}, nil
}

// Seed inserts fixture recommendations, skipping ones that already exist for
// the same recommender name and company. Returns the number created.
func (s *recommendationService) Seed(ctx context.Context, fixtures []model.Recommendation) (int, error) {
	created := 0
	for i := range fixtures {
		fixture := fixtures[i]

		existing, err := s.repo.FindByRecommender(ctx, fixture.RecommenderName, fixture.RecommenderCompany)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, fmt.Errorf("check fixture %q: %w", fixture.RecommenderName, err)
		}
		if existing != nil {
			continue
		}

		if err := s.repo.Create(ctx, &fixture); err != nil {
			return created, fmt.Errorf("seed fixture %q: %w", fixture.RecommenderName, err)
		}
		created++
	}
	return created, nil
}
