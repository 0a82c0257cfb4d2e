package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/model"
)

// RecommendationRepository defines recommendation persistence operations.
// Reads only see non-deleted rows; soft-deleted records stay in storage and
// remain addressable through Restore.
type RecommendationRepository interface {
	Create(ctx context.Context, rec *model.Recommendation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Recommendation, error)
	Update(ctx context.Context, rec *model.Recommendation) error
	List(ctx context.Context) ([]model.Recommendation, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	FindByRecommender(ctx context.Context, name, company string) (*model.Recommendation, error)
	Stats(ctx context.Context) (total int64, avgRating float64, err error)
}

type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new recommendation repository.
func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

// Create creates a new recommendation record.
func (r *recommendationRepository) Create(ctx context.Context, rec *model.Recommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// FindByID finds a non-deleted recommendation by ID. Soft-deleted records
// behave as absent to this path.
func (r *recommendationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Recommendation, error) {
	var rec model.Recommendation
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update saves an existing recommendation record.
func (r *recommendationRepository) Update(ctx context.Context, rec *model.Recommendation) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// List returns all non-deleted recommendations ordered by recommendation
// date descending, ties broken by creation time descending.
func (r *recommendationRepository) List(ctx context.Context) ([]model.Recommendation, error) {
	var recs []model.Recommendation
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("recommendation_date DESC, created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// SoftDelete marks a recommendation as deleted without removing the row.
func (r *recommendationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&model.Recommendation{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": &now,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Restore clears the deletion flag of a soft-deleted recommendation.
func (r *recommendationRepository) Restore(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&model.Recommendation{}).
		Where("id = ? AND is_deleted = ?", id, true).
		Updates(map[string]interface{}{
			"is_deleted": false,
			"deleted_at": nil,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByRecommender finds a non-deleted recommendation by recommender name
// and company. Used by the seeder to avoid duplicate fixtures.
func (r *recommendationRepository) FindByRecommender(ctx context.Context, name, company string) (*model.Recommendation, error) {
	var rec model.Recommendation
	err := r.db.WithContext(ctx).
		Where("recommender_name = ? AND recommender_company = ? AND is_deleted = ?", name, company, false).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Stats returns the number of non-deleted recommendations and their average
// rating. The average is zero when no rows exist.
func (r *recommendationRepository) Stats(ctx context.Context) (int64, float64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.Recommendation{}).
		Where("is_deleted = ?", false).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var avg float64
	if err := r.db.WithContext(ctx).
		Model(&model.Recommendation{}).
		Where("is_deleted = ?", false).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return 0, 0, err
	}
	return total, avg, nil
}
