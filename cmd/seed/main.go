package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.Recommendation{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	fixtures := seed.Recommendations()
	log.Printf("Loaded %d sample recommendations", len(fixtures))

	recRepo := repository.NewRecommendationRepository(gormDB)
	ctx := context.Background()

	log.Println("Seeding recommendations into database...")
	created, skipped, err := seedRecommendations(ctx, recRepo, fixtures)
	if err != nil {
		log.Fatalf("Failed to seed recommendations: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New recommendations created: %d", created)
	log.Printf("  - Already existing, skipped: %d", skipped)
	log.Printf("  - Total fixtures processed: %d", created+skipped)
}

// seedRecommendations inserts fixtures, skipping ones that already exist for
// the same recommender name and company.
func seedRecommendations(ctx context.Context, repo repository.RecommendationRepository, fixtures []model.Recommendation) (created int, skipped int, err error) {
	for i := range fixtures {
		fixture := fixtures[i]

		existing, err := repo.FindByRecommender(ctx, fixture.RecommenderName, fixture.RecommenderCompany)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, skipped, err
		}

		if existing != nil {
			log.Printf("Recommendation from %s at %s already exists, skipping",
				fixture.RecommenderName, fixture.RecommenderCompany)
			skipped++
			continue
		}

		if err := repo.Create(ctx, &fixture); err != nil {
			return created, skipped, err
		}
		log.Printf("Created recommendation from %s at %s",
			fixture.RecommenderName, fixture.RecommenderCompany)
		created++
	}
	return created, skipped, nil
}
