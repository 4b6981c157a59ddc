package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment links a student to a course. At most one enrollment exists per
// (course, student) pair; enrollments are removed only when their course is
// deleted.
type Enrollment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CourseID  uuid.UUID `json:"courseId" db:"course_id"`
	StudentID uuid.UUID `json:"studentId" db:"student_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
