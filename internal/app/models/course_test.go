package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}

	assert.False(t, Category("").IsValid())
	assert.False(t, Category("web development").IsValid(), "category values are case sensitive")
	assert.False(t, Category("Gardening").IsValid())
}

func TestDifficultyIsValid(t *testing.T) {
	assert.True(t, DifficultyBeginner.IsValid())
	assert.True(t, DifficultyIntermediate.IsValid())
	assert.True(t, DifficultyAdvanced.IsValid())

	assert.False(t, Difficulty("").IsValid())
	assert.False(t, Difficulty("Beginner").IsValid(), "difficulty values are lowercase")
}

func TestMaterialTypeIsValid(t *testing.T) {
	for _, mt := range []MaterialType{MaterialAssignment, MaterialQuiz, MaterialLecture, MaterialReading, MaterialOther} {
		assert.True(t, mt.IsValid())
	}
	assert.False(t, MaterialType("video").IsValid())
}

func TestCourseHasStudent(t *testing.T) {
	enrolled := uuid.New()
	course := &Course{Students: []uuid.UUID{uuid.New(), enrolled}}

	assert.True(t, course.HasStudent(enrolled))
	assert.False(t, course.HasStudent(uuid.New()))

	empty := &Course{}
	assert.False(t, empty.HasStudent(enrolled))
}

func TestCourseReviewBy(t *testing.T) {
	reviewer := uuid.New()
	course := &Course{Reviews: []Review{
		{User: uuid.New(), Rating: 3},
		{User: reviewer, Rating: 5, Comment: "Great"},
	}}

	review := course.ReviewBy(reviewer)
	assert.NotNil(t, review)
	assert.Equal(t, 5, review.Rating)

	assert.Nil(t, course.ReviewBy(uuid.New()))
}

func TestCourseTouch(t *testing.T) {
	course := &Course{}
	course.Touch()

	assert.False(t, course.UpdatedAt.IsZero())
	first := course.UpdatedAt

	course.Touch()
	assert.True(t, !course.UpdatedAt.Before(first))
}
