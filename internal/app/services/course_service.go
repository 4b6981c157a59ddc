package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/YassenAli/Mentoria/internal/app/models"
	"github.com/YassenAli/Mentoria/internal/app/models/dto"
	"github.com/YassenAli/Mentoria/internal/app/repositories"
	"github.com/YassenAli/Mentoria/internal/db"
	"github.com/YassenAli/Mentoria/internal/pkg/apperrors"
	"github.com/YassenAli/Mentoria/internal/pkg/dberrors"
	"github.com/YassenAli/Mentoria/internal/pkg/helpers"
)

// TxManager runs a function inside a database transaction.
type TxManager interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context, filter dto.CourseFilter) (*dto.CourseListResponse, error)
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	CreateCourse(ctx context.Context, principal models.Principal, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, principal models.Principal, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string, principal models.Principal) error
	EnrollCourse(ctx context.Context, id string, principal models.Principal) (*models.Enrollment, error)
	ReviewCourse(ctx context.Context, id string, principal models.Principal, req *dto.ReviewRequest) (*models.Course, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo     repositories.CourseRepository
	enrollmentRepo repositories.EnrollmentRepository
	txManager      TxManager
	logger         zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo repositories.CourseRepository,
	enrollmentRepo repositories.EnrollmentRepository,
	txManager TxManager,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		txManager:      txManager,
		logger:         logger.With().Str("service", "CourseService").Logger(),
	}
}

// ListCourses retrieves a page of courses matching the filter.
func (s *courseServiceImpl) ListCourses(ctx context.Context, filter dto.CourseFilter) (*dto.CourseListResponse, error) {
	if filter.Page < 1 {
		filter.Page = helpers.DefaultPage
	}
	if filter.PageSize <= 0 || filter.PageSize > helpers.MaxPageSize {
		filter.PageSize = helpers.DefaultPageSize
	}

	courses, total, err := s.courseRepo.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Interface("filter", filter).Msg("Failed to list courses")
		return nil, err
	}

	return &dto.CourseListResponse{
		Courses:     courses,
		TotalAmount: total,
		Page:        filter.Page,
		TotalPages:  helpers.TotalPages(total, filter.PageSize),
	}, nil
}

// GetCourseByID retrieves a single course. A malformed id is reported the
// same way as a missing course.
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NewCourseNotFoundError("Course not found")
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.NewCourseNotFoundError("Course not found")
		}
		s.logger.Error().Err(err).Str("courseId", id).Msg("Failed to get course")
		return nil, err
	}

	return course, nil
}

// CreateCourse creates a course owned by the calling instructor.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, principal models.Principal, req *dto.CreateCourseRequest) (*models.Course, error) {
	if req.Title == "" || req.Description == "" || req.Category == "" || req.Difficulty == "" {
		return nil, apperrors.NewValidationError("Please fill in all fields")
	}

	category := models.Category(req.Category)
	if !category.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCategory, "Invalid category: "+req.Category)
	}

	difficulty := models.Difficulty(req.Difficulty)
	if !difficulty.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidDifficulty, "Invalid difficulty: "+req.Difficulty)
	}

	now := time.Now().UTC()
	course := &models.Course{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Instructor: models.Instructor{
			ID:   principal.ID,
			Name: principal.Name,
		},
		Students:   []uuid.UUID{},
		Category:   category,
		Difficulty: difficulty,
		Materials:  []models.Material{},
		Reviews:    []models.Review{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		s.logger.Error().Err(err).Str("instructorId", principal.ID.String()).Msg("Failed to create course")
		return nil, err
	}

	s.logger.Info().Str("courseId", course.ID.String()).Str("instructorId", principal.ID.String()).Msg("Course created")
	return course, nil
}

// UpdateCourse merges the allowed fields into an existing course. Only the
// owning instructor may update; instructor, students and reviews are never
// writable through this path.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, principal models.Principal, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if course.Instructor.ID != principal.ID {
		return nil, apperrors.NewForbiddenError("Not authorized to update this course")
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Category != nil {
		category := models.Category(*req.Category)
		if !category.IsValid() {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCategory, "Invalid category: "+*req.Category)
		}
		course.Category = category
	}
	if req.Difficulty != nil {
		difficulty := models.Difficulty(*req.Difficulty)
		if !difficulty.IsValid() {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidDifficulty, "Invalid difficulty: "+*req.Difficulty)
		}
		course.Difficulty = difficulty
	}
	if req.Materials != nil {
		for _, material := range req.Materials {
			if material.Title == "" || !material.MaterialType.IsValid() {
				return nil, apperrors.NewValidationError("Each material needs a title and a valid materialType")
			}
		}
		course.Materials = req.Materials
	}

	course.Touch()

	if err := s.courseRepo.Update(ctx, course); err != nil {
		s.logger.Error().Err(err).Str("courseId", course.ID.String()).Msg("Failed to update course")
		return nil, err
	}

	return course, nil
}

// DeleteCourse deletes a course and every enrollment referencing it. Both
// deletions happen in one transaction so a cleanup failure can never leave
// orphaned enrollments behind.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string, principal models.Principal) error {
	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return err
	}

	if course.Instructor.ID != principal.ID {
		return apperrors.NewForbiddenError("Not authorized to delete this course")
	}

	var removed int64
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		removed, err = s.enrollmentRepo.DeleteByCourseTx(ctx, tx, course.ID)
		if err != nil {
			return err
		}
		return s.courseRepo.DeleteTx(ctx, tx, course.ID)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("courseId", course.ID.String()).Msg("Failed to delete course with its enrollments")
		return err
	}

	s.logger.Info().Str("courseId", course.ID.String()).Int64("enrollmentsRemoved", removed).Msg("Course deleted")
	return nil
}

// EnrollCourse enrolls the calling student. The enrollment row and the
// course's students entry are written in one transaction. The course row is
// re-read FOR UPDATE inside that transaction, so concurrent enrollments
// serialize on the row lock instead of overwriting each other's students
// entries; a concurrent duplicate for the same student is caught by the
// unique (course_id, student_id) constraint.
func (s *courseServiceImpl) EnrollCourse(ctx context.Context, id string, principal models.Principal) (*models.Enrollment, error) {
	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := s.enrollmentRepo.FindByCourseAndStudent(ctx, course.ID, principal.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("courseId", course.ID.String()).Msg("Failed to check enrollment")
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("Already enrolled in this course")
	}

	enrollment := &models.Enrollment{
		ID:        uuid.New(),
		CourseID:  course.ID,
		StudentID: principal.ID,
		CreatedAt: time.Now().UTC(),
	}

	err = s.txManager.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.enrollmentRepo.CreateTx(ctx, tx, enrollment); err != nil {
			return err
		}

		locked, err := s.courseRepo.GetByIDForUpdateTx(ctx, tx, course.ID)
		if err != nil {
			return err
		}
		if !locked.HasStudent(principal.ID) {
			locked.Students = append(locked.Students, principal.ID)
		}
		locked.Touch()

		return s.courseRepo.UpdateTx(ctx, tx, locked)
	})
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, repositories.EnrollmentCourseStudentKey) {
			return nil, apperrors.NewConflictError("Already enrolled in this course")
		}
		s.logger.Error().Err(err).Str("courseId", course.ID.String()).Str("studentId", principal.ID.String()).Msg("Failed to enroll in course")
		return nil, err
	}

	s.logger.Info().Str("courseId", course.ID.String()).Str("studentId", principal.ID.String()).Msg("Student enrolled")
	return enrollment, nil
}

// ReviewCourse appends the calling student's review. Only enrolled students
// may review, and each student may review a course once. The append runs
// against a FOR UPDATE re-read of the course row, so concurrent reviews
// serialize instead of dropping each other, and the one-review-per-student
// check is re-applied on the locked state.
func (s *courseServiceImpl) ReviewCourse(ctx context.Context, id string, principal models.Principal, req *dto.ReviewRequest) (*models.Course, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRating, "Rating must be between 1 and 5")
	}

	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.FindByCourseAndStudent(ctx, course.ID, principal.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("courseId", course.ID.String()).Msg("Failed to check enrollment")
		return nil, err
	}
	if enrollment == nil {
		return nil, apperrors.NewValidationError("Not enrolled in this course")
	}

	if course.ReviewBy(principal.ID) != nil {
		return nil, apperrors.NewConflictError("Already reviewed this course")
	}

	var reviewed *models.Course
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		locked, err := s.courseRepo.GetByIDForUpdateTx(ctx, tx, course.ID)
		if err != nil {
			return err
		}
		if locked.ReviewBy(principal.ID) != nil {
			return apperrors.NewConflictError("Already reviewed this course")
		}

		locked.Reviews = append(locked.Reviews, models.Review{
			User:      principal.ID,
			Username:  principal.Name,
			Rating:    req.Rating,
			Comment:   req.Comment,
			CreatedAt: time.Now().UTC(),
		})
		locked.Touch()

		reviewed = locked
		return s.courseRepo.UpdateTx(ctx, tx, locked)
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("courseId", course.ID.String()).Msg("Failed to save review")
		return nil, err
	}

	return reviewed, nil
}
