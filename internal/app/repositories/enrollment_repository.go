package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YassenAli/Mentoria/internal/app/models"
)

// EnrollmentCourseStudentKey is the unique (course_id, student_id)
// constraint on the enrollments table.
const EnrollmentCourseStudentKey = "enrollments_course_student_key"

// EnrollmentRepository handles database operations for enrollments.
type EnrollmentRepository interface {
	FindByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (*models.Enrollment, error)
	CreateTx(ctx context.Context, tx pgx.Tx, enrollment *models.Enrollment) error
	DeleteByCourseTx(ctx context.Context, tx pgx.Tx, courseID uuid.UUID) (int64, error)
}

type enrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// FindByCourseAndStudent returns the enrollment for the given pair, or nil
// when the student is not enrolled.
func (r *enrollmentRepository) FindByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (*models.Enrollment, error) {
	query := `
		SELECT id, course_id, student_id, created_at
		FROM enrollments
		WHERE course_id = $1 AND student_id = $2
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, courseID, studentID).Scan(
		&enrollment.ID,
		&enrollment.CourseID,
		&enrollment.StudentID,
		&enrollment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding enrollment for course %s and student %s: %w", courseID, studentID, err)
	}

	return &enrollment, nil
}

// CreateTx inserts an enrollment within an existing transaction. The unique
// (course_id, student_id) constraint surfaces concurrent duplicates as a
// pg unique violation.
func (r *enrollmentRepository) CreateTx(ctx context.Context, tx pgx.Tx, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (id, course_id, student_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := tx.Exec(ctx, query,
		enrollment.ID,
		enrollment.CourseID,
		enrollment.StudentID,
		enrollment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating enrollment: %w", err)
	}

	return nil
}

// DeleteByCourseTx removes every enrollment referencing the course within an
// existing transaction and reports how many were removed.
func (r *enrollmentRepository) DeleteByCourseTx(ctx context.Context, tx pgx.Tx, courseID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE course_id = $1`, courseID)
	if err != nil {
		return 0, fmt.Errorf("deleting enrollments for course %s: %w", courseID, err)
	}

	return tag.RowsAffected(), nil
}
