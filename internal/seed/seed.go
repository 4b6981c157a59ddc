package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/YassenAli/Mentoria/internal/app/models"
	appRepos "github.com/YassenAli/Mentoria/internal/app/repositories"
)

// Well-known ids for local development; tokens minted for these users work
// across restarts.
var (
	DemoInstructorID = uuid.MustParse("3f1c3f76-33b1-4a89-9d5a-5dbe0f4f6c01")
	DemoStudentID    = uuid.MustParse("7b8332b3-9c70-4aa0-8f0a-14bb96dfdb02")
)

// CreateDefaultData inserts a few demo courses if the courses table is
// empty. Safe to call on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int64
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int64("courses", count).Msg("Courses already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding demo courses...")
	courseRepo := appRepos.NewCourseRepository(dbPool)

	now := time.Now().UTC()
	demoCourses := []appModels.Course{
		{
			ID:          uuid.New(),
			Title:       "Intro to Go",
			Description: "Build REST services with the Go standard library and Gin.",
			Category:    appModels.CategoryWebDevelopment,
			Difficulty:  appModels.DifficultyBeginner,
			Materials: []appModels.Material{
				{Title: "Course syllabus", MaterialType: appModels.MaterialReading, URL: "https://example.com/go-syllabus.pdf", FileType: "pdf"},
				{Title: "Week 1 lecture", MaterialType: appModels.MaterialLecture, URL: "https://example.com/go-week1.mp4", FileType: "video"},
			},
		},
		{
			ID:          uuid.New(),
			Title:       "Practical Machine Learning",
			Description: "Regression, classification and evaluation on real datasets.",
			Category:    appModels.CategoryMachineLearning,
			Difficulty:  appModels.DifficultyIntermediate,
		},
		{
			ID:          uuid.New(),
			Title:       "Kubernetes in Production",
			Description: "Operating clusters, rollouts and observability at scale.",
			Category:    appModels.CategoryDevOps,
			Difficulty:  appModels.DifficultyAdvanced,
		},
	}

	for i := range demoCourses {
		course := &demoCourses[i]
		course.Instructor = appModels.Instructor{ID: DemoInstructorID, Name: "Demo Instructor"}
		course.CreatedAt = now
		course.UpdatedAt = now

		if err := courseRepo.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("title", course.Title).Msg("Failed to seed course")
			return err
		}
	}

	lgr.Info().Int("courses", len(demoCourses)).Msg("Demo courses seeded")
	return nil
}
