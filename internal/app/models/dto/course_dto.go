package dto

import (
	"github.com/YassenAli/Mentoria/internal/app/models"
)

// CreateCourseRequest is the payload for creating a course. The instructor
// identity comes from the authenticated principal, never from the body.
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Difficulty  string `json:"difficulty" binding:"required"`
}

// UpdateCourseRequest is the payload for a partial course update. Only the
// fields listed here may be changed; instructor, id, students and reviews
// are never writable through update.
type UpdateCourseRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Category    *string           `json:"category"`
	Difficulty  *string           `json:"difficulty"`
	Materials   []models.Material `json:"materials"`
}

// ReviewRequest is the payload for reviewing a course.
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// CourseFilter holds the list endpoint's optional filters. Each filter is a
// case-insensitive substring match; filters compose with AND semantics.
type CourseFilter struct {
	Title      string
	Category   string
	Difficulty string
	Instructor string
	SortBy     string
	Page       int
	PageSize   int
}

// CourseListResponse is the list endpoint envelope.
type CourseListResponse struct {
	Courses     []models.Course `json:"courses"`
	TotalAmount int64           `json:"totalAmount"`
	Page        int             `json:"page"`
	TotalPages  int             `json:"totalPages"`
}
