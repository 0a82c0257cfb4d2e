package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"portfolio/internal/cache"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

// MockRecommendationRepository is a mock implementation of RecommendationRepository.
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Create(ctx context.Context, rec *model.Recommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecommendationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) Update(ctx context.Context, rec *model.Recommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecommendationRepository) List(ctx context.Context) ([]model.Recommendation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecommendationRepository) Restore(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecommendationRepository) FindByRecommender(ctx context.Context, name, company string) (*model.Recommendation, error) {
	args := m.Called(ctx, name, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) Stats(ctx context.Context) (int64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

// nilCache is an always-miss cache; the wrapper tolerates a nil receiver.
var nilCache *cache.Client

func validRaw() map[string]interface{} {
	return map[string]interface{}{
		"recommender_name":     "Sarah Johnson",
		"recommender_title":    "Senior Software Engineer",
		"recommender_company":  "TechCorp Solutions",
		"recommender_location": "United States",
		"recommendation_text":  "Consistently delivers clean, maintainable code.",
		"project_context":      "E-commerce Platform",
		"linkedin_url":         "https://www.linkedin.com/in/sarah-johnson",
		"email":                "sarah.johnson@techcorp.com",
		"rating":               float64(4),
		"recommendation_date":  "2024-06-10",
	}
}

func TestRecommendationService_Create(t *testing.T) {
	mockRepo := new(MockRecommendationRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Recommendation")).Return(nil)

	svc := NewRecommendationService(mockRepo, nilCache)
	rec, err := svc.Create(context.Background(), validRaw())

	assert.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Equal(t, "Sarah Johnson", rec.RecommenderName)
	assert.Equal(t, "Senior Software Engineer", rec.RecommenderTitle)
	assert.Equal(t, 4, rec.Rating)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), rec.RecommendationDate)
	assert.False(t, rec.IsDeleted)
	mockRepo.AssertExpectations(t)
}

func TestRecommendationService_Create_ValidationFailure(t *testing.T) {
	mockRepo := new(MockRecommendationRepository)

	svc := NewRecommendationService(mockRepo, nilCache)
	rec, err := svc.Create(context.Background(), map[string]interface{}{
		"recommender_name": "Sarah Johnson",
		"rating":           "abc",
	})

	assert.Nil(t, rec)
	var valErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields["rating"], "must be an integer between 1 and 5.")
	assert.Contains(t, valErr.Fields["recommendation_text"], "this field is required.")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecommendationService_Get(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name          string
		setupMock     func(*MockRecommendationRepository)
		expectedError error
	}{
		{
			name: "found",
			setupMock: func(m *MockRecommendationRepository) {
				m.On("FindByID", mock.Anything, id).Return(&model.Recommendation{ID: id, RecommenderName: "Ahmed Hassan"}, nil)
			},
		},
		{
			name: "absent maps to not found",
			setupMock: func(m *MockRecommendationRepository) {
				m.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrRecommendationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRecommendationRepository)
			tt.setupMock(mockRepo)

			svc := NewRecommendationService(mockRepo, nilCache)
			rec, err := svc.Get(context.Background(), id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, rec)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, id, rec.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRecommendationService_Update(t *testing.T) {
	id := uuid.New()
	existing := &model.Recommendation{
		ID:                 id,
		RecommenderName:    "Old Name",
		RecommenderTitle:   "Old Title",
		RecommenderCompany: "Old Company",
		RecommendationText: "The original recommendation text.",
		Rating:             2,
		RecommendationDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	mockRepo := new(MockRecommendationRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Recommendation")).Return(nil)

	svc := NewRecommendationService(mockRepo, nilCache)
	rec, err := svc.Update(context.Background(), id, validRaw())

	assert.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "Sarah Johnson", rec.RecommenderName)
	assert.Equal(t, 4, rec.Rating)
	mockRepo.AssertExpectations(t)
}

func TestRecommendationService_Update_NotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockRecommendationRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewRecommendationService(mockRepo, nilCache)
	rec, err := svc.Update(context.Background(), id, validRaw())

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, apperrors.ErrRecommendationNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRecommendationService_Update_ValidationFailure(t *testing.T) {
	id := uuid.New()
	existing := &model.Recommendation{ID: id, RecommenderName: "Old Name"}

	mockRepo := new(MockRecommendationRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(existing, nil)

	svc := NewRecommendationService(mockRepo, nilCache)
	rec, err := svc.Update(context.Background(), id, map[string]interface{}{
		"recommendation_text": "short",
	})

	assert.Nil(t, rec)
	var valErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &valErr)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRecommendationService_SoftDelete(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name          string
		repoErr       error
		expectedError error
	}{
		{"deleted", nil, nil},
		{"absent or already deleted", gorm.ErrRecordNotFound, apperrors.ErrRecommendationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRecommendationRepository)
			mockRepo.On("SoftDelete", mock.Anything, id).Return(tt.repoErr)

			svc := NewRecommendationService(mockRepo, nilCache)
			err := svc.SoftDelete(context.Background(), id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRecommendationService_Restore(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockRecommendationRepository)
	mockRepo.On("Restore", mock.Anything, id).Return(nil)

	svc := NewRecommendationService(mockRepo, nilCache)
	assert.NoError(t, svc.Restore(context.Background(), id))
	mockRepo.AssertExpectations(t)
}

func TestRecommendationService_List(t *testing.T) {
	mockRepo := new(MockRecommendationRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Recommendation{
		{RecommenderName: "July", RecommendationDate: time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)},
		{RecommenderName: "June", RecommendationDate: time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)},
		{RecommenderName: "May", RecommendationDate: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	svc := NewRecommendationService(mockRepo, nilCache)
	recs, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, recs, 3)
	assert.Equal(t, "July", recs[0].RecommenderName)
	assert.Equal(t, "June", recs[1].RecommenderName)
	assert.Equal(t, "May", recs[2].RecommenderName)
	mockRepo.AssertExpectations(t)
}

func TestRecommendationService_Stats(t *testing.T) {
	mockRepo := new(MockRecommendationRepository)
	mockRepo.On("Stats", mock.Anything).Return(int64(3), 4.6666666, nil)

	svc := NewRecommendationService(mockRepo, nilCache)
	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, "4.67", stats.AverageRating.String())
	mockRepo.AssertExpectations(t)
}

func TestRecommendationService_Seed(t *testing.T) {
	fixtures := []model.Recommendation{
		{RecommenderName: "Adel Abobacker", RecommenderCompany: "Freelancer"},
		{RecommenderName: "Sarah Johnson", RecommenderCompany: "TechCorp Solutions"},
	}

	mockRepo := new(MockRecommendationRepository)
	mockRepo.On("FindByRecommender", mock.Anything, "Adel Abobacker", "Freelancer").
		Return(&model.Recommendation{RecommenderName: "Adel Abobacker"}, nil)
	mockRepo.On("FindByRecommender", mock.Anything, "Sarah Johnson", "TechCorp Solutions").
		Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Recommendation")).Return(nil)

	svc := NewRecommendationService(mockRepo, nilCache)
	created, err := svc.Seed(context.Background(), fixtures)

	assert.NoError(t, err)
	assert.Equal(t, 1, created)
	mockRepo.AssertExpectations(t)
}
