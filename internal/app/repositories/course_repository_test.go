package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YassenAli/Mentoria/internal/app/models/dto"
)

func TestBuildListQuery(t *testing.T) {
	t.Run("applies filters, sort, and pagination", func(t *testing.T) {
		query, args, err := buildListQuery(dto.CourseFilter{
			Title:      "go",
			Category:   "Web Development",
			Instructor: "grace",
			SortBy:     "title",
			Page:       3,
			PageSize:   10,
		})
		require.NoError(t, err)

		assert.Contains(t, query, "COUNT(*) OVER() AS total_count")
		assert.Contains(t, query, "title ILIKE $1")
		assert.Contains(t, query, "category ILIKE $2")
		assert.Contains(t, query, "instructor_name ILIKE $3")
		assert.Contains(t, query, "ORDER BY title DESC")
		assert.Contains(t, query, "LIMIT 10 OFFSET 20")
		assert.Equal(t, []interface{}{"%go%", "%Web Development%", "%grace%"}, args)
	})

	t.Run("unknown sort keys fall back to created_at", func(t *testing.T) {
		query, _, err := buildListQuery(dto.CourseFilter{SortBy: "instructor.name; DROP TABLE courses", Page: 1, PageSize: 10})
		require.NoError(t, err)

		assert.Contains(t, query, "ORDER BY created_at DESC")
		assert.NotContains(t, query, "DROP TABLE")
	})
}

func TestBuildCountQuery(t *testing.T) {
	filter := dto.CourseFilter{
		Title:      "go",
		Difficulty: "beginner",
		Page:       7,
		PageSize:   10,
	}

	listQuery, listArgs, err := buildListQuery(filter)
	require.NoError(t, err)
	countQuery, countArgs, err := buildCountQuery(filter)
	require.NoError(t, err)

	// The fallback count must match the same rows as the list query
	assert.Equal(t, listArgs, countArgs)
	assert.Contains(t, countQuery, "title ILIKE $1")
	assert.Contains(t, countQuery, "difficulty ILIKE $2")
	assert.NotContains(t, countQuery, "LIMIT")
	assert.NotContains(t, countQuery, "OFFSET")
	assert.Contains(t, listQuery, "LIMIT 10 OFFSET 60")
}
