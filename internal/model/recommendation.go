package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const shortTextLimit = 150

// Recommendation represents a professional recommendation given by a
// colleague, manager, or client.
type Recommendation struct {
	ID                  uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	RecommenderName     string     `json:"recommender_name" gorm:"size:100;not null;index"`
	RecommenderTitle    string     `json:"recommender_title" gorm:"size:150;not null"`
	RecommenderCompany  string     `json:"recommender_company" gorm:"size:100;not null;index"`
	RecommenderLocation string     `json:"recommender_location" gorm:"size:100"`
	RecommendationText  string     `json:"recommendation_text" gorm:"type:text;not null"`
	ProjectContext      string     `json:"project_context" gorm:"size:200"`
	LinkedinURL         string     `json:"linkedin_url" gorm:"size:255"`
	Email               string     `json:"email" gorm:"size:255"`
	Rating              int        `json:"rating" gorm:"not null;index"`
	RecommendationDate  time.Time  `json:"recommendation_date" gorm:"type:date;not null;index"`
	IsDeleted           bool       `json:"is_deleted" gorm:"default:false;index"`
	DeletedAt           *time.Time `json:"deleted_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RatingStars renders a rating as a five-glyph star string, e.g. "★★★☆☆".
func RatingStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// FullTitle returns the recommender's title combined with their company.
func (r *Recommendation) FullTitle() string {
	return fmt.Sprintf("%s at %s", r.RecommenderTitle, r.RecommenderCompany)
}

// ShortText returns a shortened version of the recommendation text.
func (r *Recommendation) ShortText() string {
	runes := []rune(r.RecommendationText)
	if len(runes) <= shortTextLimit {
		return r.RecommendationText
	}
	return string(runes[:shortTextLimit]) + "..."
}
