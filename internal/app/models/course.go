package models

import (
	"time"

	"github.com/google/uuid"
)

// Instructor identifies the user who owns a course.
type Instructor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Material is a single course material. Materials live inside their course
// and have no independent lifecycle.
type Material struct {
	Title        string       `json:"title"`
	MaterialType MaterialType `json:"materialType"`
	URL          string       `json:"url,omitempty"`
	FileType     string       `json:"fileType,omitempty"`
	FileSize     int64        `json:"fileSize,omitempty"`
}

// Review is one student's review of a course. At most one review per user.
type Review struct {
	User      uuid.UUID `json:"user"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Course is the aggregate root for a marketplace course. It embeds its
// materials and reviews and tracks enrolled students by id.
type Course struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Instructor  Instructor  `json:"instructor"`
	Students    []uuid.UUID `json:"students" db:"students"`
	Category    Category    `json:"category" db:"category"`
	Difficulty  Difficulty  `json:"difficulty" db:"difficulty"`
	Materials   []Material  `json:"materials" db:"materials"`
	Reviews     []Review    `json:"reviews" db:"reviews"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// HasStudent reports whether the given user is in the students list.
func (c *Course) HasStudent(userID uuid.UUID) bool {
	for _, id := range c.Students {
		if id == userID {
			return true
		}
	}
	return false
}

// ReviewBy returns the review left by the given user, or nil.
func (c *Course) ReviewBy(userID uuid.UUID) *Review {
	for i := range c.Reviews {
		if c.Reviews[i].User == userID {
			return &c.Reviews[i]
		}
	}
	return nil
}

// Touch refreshes the updatedAt timestamp. Every mutation path calls this
// explicitly before persisting.
func (c *Course) Touch() {
	c.UpdatedAt = time.Now().UTC()
}
