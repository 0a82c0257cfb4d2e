// Package seed holds the built-in sample recommendations used for local
// development and demos.
package seed

import (
	"time"

	"portfolio/internal/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Recommendations returns the sample fixtures. Callers deduplicate by
// recommender name and company before inserting.
func Recommendations() []model.Recommendation {
	return []model.Recommendation{
		{
			RecommenderName:     "Adel Abobacker",
			RecommenderTitle:    "Senior WordPress Developer",
			RecommenderCompany:  "Freelancer",
			RecommenderLocation: "Syria",
			RecommendationText:  "Wassim Alshami is an exceptional back-end developer with expertise in ASP.NET and problem-solving. He excels in performance optimization, scalable architecture, and high code quality. A great team player, he shares knowledge and tackles challenges efficiently. I highly recommend him!",
			ProjectContext:      "Web Development Projects",
			LinkedinURL:         "https://www.linkedin.com/in/adel-abobacker",
			Email:               "adel@example.com",
			Rating:              5,
			RecommendationDate:  date(2024, time.July, 15),
		},
		{
			RecommenderName:     "Sarah Johnson",
			RecommenderTitle:    "Senior Software Engineer",
			RecommenderCompany:  "TechCorp Solutions",
			RecommenderLocation: "United States",
			RecommendationText:  "I had the pleasure of working with Wassim on several complex backend projects. His expertise in Django and Python is outstanding. He consistently delivers clean, maintainable code and has a deep understanding of software architecture principles. Wassim is also excellent at mentoring junior developers.",
			ProjectContext:      "E-commerce Platform Development",
			LinkedinURL:         "https://www.linkedin.com/in/sarah-johnson",
			Email:               "sarah.johnson@techcorp.com",
			Rating:              5,
			RecommendationDate:  date(2024, time.June, 10),
		},
		{
			RecommenderName:     "Ahmed Hassan",
			RecommenderTitle:    "DevOps Engineer",
			RecommenderCompany:  "CloudTech Inc",
			RecommenderLocation: "Egypt",
			RecommendationText:  "Wassim demonstrated exceptional skills in backend development and system design during our collaboration. His ability to optimize database queries and implement efficient caching strategies significantly improved our application performance. He is also very knowledgeable about cloud technologies and containerization.",
			ProjectContext:      "Microservices Migration",
			LinkedinURL:         "https://www.linkedin.com/in/ahmed-hassan",
			Email:               "ahmed.hassan@cloudtech.com",
			Rating:              5,
			RecommendationDate:  date(2024, time.May, 20),
		},
		{
			RecommenderName:     "Maria Rodriguez",
			RecommenderTitle:    "Product Manager",
			RecommenderCompany:  "InnovateLab",
			RecommenderLocation: "Spain",
			RecommendationText:  "Working with Wassim was a fantastic experience. He has a unique ability to understand business requirements and translate them into technical solutions. His communication skills are excellent, and he always keeps stakeholders informed about project progress. The APIs he developed were robust and well-documented.",
			ProjectContext:      "API Development for Mobile App",
			LinkedinURL:         "https://www.linkedin.com/in/maria-rodriguez",
			Email:               "maria.rodriguez@innovatelab.com",
			Rating:              4,
			RecommendationDate:  date(2024, time.April, 15),
		},
		{
			RecommenderName:     "David Chen",
			RecommenderTitle:    "CTO",
			RecommenderCompany:  "StartupXYZ",
			RecommenderLocation: "Canada",
			RecommendationText:  "Wassim joined our startup as a senior backend developer and quickly became an invaluable team member. His expertise in building scalable systems helped us handle rapid user growth. He introduced best practices for testing and deployment that significantly improved our development workflow. Highly recommended for any backend role.",
			ProjectContext:      "Startup Backend Infrastructure",
			LinkedinURL:         "https://www.linkedin.com/in/david-chen",
			Email:               "david.chen@startupxyz.com",
			Rating:              5,
			RecommendationDate:  date(2024, time.March, 8),
		},
	}
}
