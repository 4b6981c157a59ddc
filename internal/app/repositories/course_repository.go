package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YassenAli/Mentoria/internal/app/models"
	"github.com/YassenAli/Mentoria/internal/app/models/dto"
	"github.com/YassenAli/Mentoria/internal/pkg/apperrors"
	"github.com/YassenAli/Mentoria/internal/pkg/helpers"
)

// sortColumns maps API sort keys to table columns. Anything outside this
// list falls back to created_at.
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
	"title":      "title",
	"category":   "category",
	"difficulty": "difficulty",
}

// CourseRepository handles database operations for courses.
type CourseRepository interface {
	GetAll(ctx context.Context, filter dto.CourseFilter) ([]models.Course, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	UpdateTx(ctx context.Context, tx pgx.Tx, course *models.Course) error
	DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type courseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) CourseRepository {
	return &courseRepository{db: db}
}

const courseColumns = "id, title, description, instructor_id, instructor_name, students, category, difficulty, materials, reviews, created_at, updated_at"

// applyCourseFilters adds the filter's WHERE clauses to a query builder.
// The list and fallback count queries share this so they always agree on
// which rows match.
func applyCourseFilters(builder squirrel.SelectBuilder, filter dto.CourseFilter) squirrel.SelectBuilder {
	if filter.Title != "" {
		builder = builder.Where(squirrel.ILike{"title": "%" + filter.Title + "%"})
	}
	if filter.Category != "" {
		builder = builder.Where(squirrel.ILike{"category": "%" + filter.Category + "%"})
	}
	if filter.Difficulty != "" {
		builder = builder.Where(squirrel.ILike{"difficulty": "%" + filter.Difficulty + "%"})
	}
	if filter.Instructor != "" {
		builder = builder.Where(squirrel.ILike{"instructor_name": "%" + filter.Instructor + "%"})
	}
	return builder
}

func buildListQuery(filter dto.CourseFilter) (string, []interface{}, error) {
	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(courseColumns + ", COUNT(*) OVER() AS total_count").
		From("courses")

	return applyCourseFilters(builder, filter).
		OrderBy(sortColumn + " DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
}

func buildCountQuery(filter dto.CourseFilter) (string, []interface{}, error) {
	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("COUNT(*)").
		From("courses")

	return applyCourseFilters(builder, filter).ToSql()
}

// GetAll retrieves courses matching the filter, newest first by the
// requested sort column, with the total match count.
func (r *courseRepository) GetAll(ctx context.Context, filter dto.CourseFilter) ([]models.Course, int64, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("building course list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	var total int64
	for rows.Next() {
		var course models.Course
		if err := scanCourse(rows, &course, &total); err != nil {
			return nil, 0, fmt.Errorf("scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating course rows: %w", err)
	}

	// A page past the last match returns no rows, and the windowed count
	// disappears with them. Re-count so the caller still sees the real total.
	if len(courses) == 0 && filter.Page > 1 {
		countQuery, countArgs, err := buildCountQuery(filter)
		if err != nil {
			return nil, 0, fmt.Errorf("building course count query: %w", err)
		}
		if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("counting courses: %w", err)
		}
	}

	return courses, total, nil
}

// rowQueryer is satisfied by both *pgxpool.Pool and pgx.Tx.
type rowQueryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GetByID retrieves a course by ID
func (r *courseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return getCourse(ctx, r.db, id, false)
}

// GetByIDForUpdateTx retrieves a course within a transaction and holds its
// row lock until the transaction ends. Concurrent mutations of the same
// course serialize on this read.
func (r *courseRepository) GetByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*models.Course, error) {
	return getCourse(ctx, tx, id, true)
}

func getCourse(ctx context.Context, q rowQueryer, id uuid.UUID, forUpdate bool) (*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE id = $1
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var course models.Course
	err := q.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Instructor.ID,
		&course.Instructor.Name,
		&course.Students,
		&course.Category,
		&course.Difficulty,
		&course.Materials,
		&course.Reviews,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("getting course %s: %w", id, err)
	}

	normalizeCourse(&course)
	return &course, nil
}

// Create persists a new course
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	normalizeCourse(course)

	query := `
		INSERT INTO courses (id, title, description, instructor_id, instructor_name, students, category, difficulty, materials, reviews, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Instructor.ID,
		course.Instructor.Name,
		course.Students,
		course.Category,
		course.Difficulty,
		course.Materials,
		course.Reviews,
		course.CreatedAt,
		course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating course: %w", err)
	}

	return nil
}

// Update writes the full course document back to its row.
func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	return r.update(ctx, r.db, course)
}

// UpdateTx is Update within an existing transaction.
func (r *courseRepository) UpdateTx(ctx context.Context, tx pgx.Tx, course *models.Course) error {
	return r.update(ctx, tx, course)
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func (r *courseRepository) update(ctx context.Context, db execer, course *models.Course) error {
	normalizeCourse(course)

	query := `
		UPDATE courses
		SET title = $2, description = $3, students = $4, category = $5, difficulty = $6, materials = $7, reviews = $8, updated_at = $9
		WHERE id = $1
	`
	tag, err := db.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Students,
		course.Category,
		course.Difficulty,
		course.Materials,
		course.Reviews,
		course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating course %s: %w", course.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// DeleteTx removes a course row within an existing transaction.
func (r *courseRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting course %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// scanCourse scans one list row including the windowed total count.
func scanCourse(rows pgx.Rows, course *models.Course, total *int64) error {
	if err := rows.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Instructor.ID,
		&course.Instructor.Name,
		&course.Students,
		&course.Category,
		&course.Difficulty,
		&course.Materials,
		&course.Reviews,
		&course.CreatedAt,
		&course.UpdatedAt,
		total,
	); err != nil {
		return err
	}

	normalizeCourse(course)
	return nil
}

// normalizeCourse keeps the embedded collections non-nil so they round-trip
// through JSONB as [] instead of null.
func normalizeCourse(course *models.Course) {
	if course.Students == nil {
		course.Students = []uuid.UUID{}
	}
	if course.Materials == nil {
		course.Materials = []models.Material{}
	}
	if course.Reviews == nil {
		course.Reviews = []models.Review{}
	}
}
