package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YassenAli/Mentoria/internal/app/models"
	"github.com/YassenAli/Mentoria/internal/app/models/dto"
	"github.com/YassenAli/Mentoria/internal/app/repositories"
	"github.com/YassenAli/Mentoria/internal/db"
	"github.com/YassenAli/Mentoria/internal/pkg/apperrors"
)

// fakeTxManager runs the transaction function directly with a nil tx so the
// repository mocks observe the calls made inside the transaction.
type fakeTxManager struct {
	calls int
	err   error
}

func (f *fakeTxManager) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx, nil)
}

type serviceMocks struct {
	Courses     *repositories.CourseRepositoryMock
	Enrollments *repositories.EnrollmentRepositoryMock
	Tx          *fakeTxManager
}

func newTestService() (*serviceMocks, CourseService) {
	holder := &serviceMocks{
		Courses:     new(repositories.CourseRepositoryMock),
		Enrollments: new(repositories.EnrollmentRepositoryMock),
		Tx:          &fakeTxManager{},
	}
	svc := NewCourseService(holder.Courses, holder.Enrollments, holder.Tx, zerolog.Nop())
	return holder, svc
}

func instructorPrincipal() models.Principal {
	return models.Principal{
		ID:   uuid.New(),
		Name: "Grace Hopper",
		Role: models.RoleInstructor,
	}
}

func studentPrincipal() models.Principal {
	return models.Principal{
		ID:   uuid.New(),
		Name: "Ada Lovelace",
		Role: models.RoleStudent,
	}
}

func courseOwnedBy(instructor models.Principal) *models.Course {
	return &models.Course{
		ID:          uuid.New(),
		Title:       "Intro to Go",
		Description: "Build real services",
		Instructor: models.Instructor{
			ID:   instructor.ID,
			Name: instructor.Name,
		},
		Students:   []uuid.UUID{},
		Category:   models.CategoryWebDevelopment,
		Difficulty: models.DifficultyBeginner,
		Materials:  []models.Material{},
		Reviews:    []models.Review{},
	}
}

func TestCreateCourse(t *testing.T) {
	instructor := instructorPrincipal()

	t.Run("creates a course with empty collections", func(t *testing.T) {
		holder, svc := newTestService()
		holder.Courses.On("Create", mock.Anything, mock.AnythingOfType("*models.Course")).Return(nil)

		course, err := svc.CreateCourse(context.Background(), instructor, &dto.CreateCourseRequest{
			Title:       "Intro to Go",
			Description: "Build real services",
			Category:    "Web Development",
			Difficulty:  "beginner",
		})

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, course.ID)
		assert.Equal(t, instructor.ID, course.Instructor.ID)
		assert.Equal(t, instructor.Name, course.Instructor.Name)
		assert.NotNil(t, course.Students)
		assert.Empty(t, course.Students)
		assert.NotNil(t, course.Materials)
		assert.NotNil(t, course.Reviews)
		assert.Equal(t, course.CreatedAt, course.UpdatedAt)
		holder.Courses.AssertExpectations(t)
	})

	t.Run("rejects missing fields without writing", func(t *testing.T) {
		holder, svc := newTestService()

		_, err := svc.CreateCourse(context.Background(), instructor, &dto.CreateCourseRequest{
			Title:    "Intro to Go",
			Category: "Web Development",
		})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.EqualError(t, err, "Please fill in all fields")
		holder.Courses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, svc := newTestService()

		_, err := svc.CreateCourse(context.Background(), instructor, &dto.CreateCourseRequest{
			Title:       "Intro to Go",
			Description: "Build real services",
			Category:    "Underwater Basket Weaving",
			Difficulty:  "beginner",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
	})

	t.Run("rejects unknown difficulty", func(t *testing.T) {
		_, svc := newTestService()

		_, err := svc.CreateCourse(context.Background(), instructor, &dto.CreateCourseRequest{
			Title:       "Intro to Go",
			Description: "Build real services",
			Category:    "Web Development",
			Difficulty:  "impossible",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidDifficulty)
	})
}

func TestGetCourseByID(t *testing.T) {
	t.Run("malformed id reads as not found", func(t *testing.T) {
		holder, svc := newTestService()

		_, err := svc.GetCourseByID(context.Background(), "not-a-uuid")

		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
		assert.EqualError(t, err, "Course not found")
		holder.Courses.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("missing course reads as not found", func(t *testing.T) {
		holder, svc := newTestService()
		id := uuid.New()
		holder.Courses.On("GetByID", mock.Anything, id).Return(nil, apperrors.ErrCourseNotFound)

		_, err := svc.GetCourseByID(context.Background(), id.String())

		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
		assert.EqualError(t, err, "Course not found")
	})

	t.Run("returns the stored course", func(t *testing.T) {
		holder, svc := newTestService()
		course := courseOwnedBy(instructorPrincipal())
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)

		got, err := svc.GetCourseByID(context.Background(), course.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, course, got)
	})
}

func TestUpdateCourse(t *testing.T) {
	t.Run("only the owner may update", func(t *testing.T) {
		holder, svc := newTestService()
		owner := instructorPrincipal()
		course := courseOwnedBy(owner)
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)

		other := instructorPrincipal()
		title := "Hijacked"
		_, err := svc.UpdateCourse(context.Background(), course.ID.String(), other, &dto.UpdateCourseRequest{Title: &title})

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.EqualError(t, err, "Not authorized to update this course")
		holder.Courses.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("merges only the provided fields", func(t *testing.T) {
		holder, svc := newTestService()
		owner := instructorPrincipal()
		course := courseOwnedBy(owner)
		originalDescription := course.Description
		createdAt := course.CreatedAt
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)
		holder.Courses.On("Update", mock.Anything, mock.AnythingOfType("*models.Course")).Return(nil)

		title := "Advanced Go"
		difficulty := "advanced"
		got, err := svc.UpdateCourse(context.Background(), course.ID.String(), owner, &dto.UpdateCourseRequest{
			Title:      &title,
			Difficulty: &difficulty,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Advanced Go", got.Title)
		assert.Equal(t, models.DifficultyAdvanced, got.Difficulty)
		assert.Equal(t, originalDescription, got.Description)
		assert.Equal(t, createdAt, got.CreatedAt)
		assert.True(t, got.UpdatedAt.After(createdAt) || got.UpdatedAt.Equal(createdAt))
		holder.Courses.AssertExpectations(t)
	})

	t.Run("replaces materials wholesale and validates them", func(t *testing.T) {
		holder, svc := newTestService()
		owner := instructorPrincipal()
		course := courseOwnedBy(owner)
		course.Materials = []models.Material{{Title: "Old deck", MaterialType: models.MaterialLecture}}
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)

		_, err := svc.UpdateCourse(context.Background(), course.ID.String(), owner, &dto.UpdateCourseRequest{
			Materials: []models.Material{{Title: "", MaterialType: models.MaterialQuiz}},
		})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		holder.Courses.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteCourse(t *testing.T) {
	t.Run("only the owner may delete", func(t *testing.T) {
		holder, svc := newTestService()
		owner := instructorPrincipal()
		course := courseOwnedBy(owner)
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)

		err := svc.DeleteCourse(context.Background(), course.ID.String(), instructorPrincipal())

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.EqualError(t, err, "Not authorized to delete this course")
		assert.Zero(t, holder.Tx.calls)
	})

	t.Run("removes the course and its enrollments together", func(t *testing.T) {
		holder, svc := newTestService()
		owner := instructorPrincipal()
		course := courseOwnedBy(owner)
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)
		holder.Enrollments.On("DeleteByCourseTx", mock.Anything, mock.Anything, course.ID).Return(int64(3), nil)
		holder.Courses.On("DeleteTx", mock.Anything, mock.Anything, course.ID).Return(nil)

		err := svc.DeleteCourse(context.Background(), course.ID.String(), owner)

		assert.NoError(t, err)
		assert.Equal(t, 1, holder.Tx.calls)
		holder.Courses.AssertExpectations(t)
		holder.Enrollments.AssertExpectations(t)
	})

	t.Run("a failed enrollment cleanup aborts the delete", func(t *testing.T) {
		holder, svc := newTestService()
		owner := instructorPrincipal()
		course := courseOwnedBy(owner)
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)
		holder.Enrollments.On("DeleteByCourseTx", mock.Anything, mock.Anything, course.ID).Return(int64(0), errors.New("connection reset"))

		err := svc.DeleteCourse(context.Background(), course.ID.String(), owner)

		assert.Error(t, err)
		holder.Courses.AssertNotCalled(t, "DeleteTx", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEnrollCourse(t *testing.T) {
	t.Run("creates the enrollment and adds the student to the course", func(t *testing.T) {
		holder, svc := newTestService()
		course := courseOwnedBy(instructorPrincipal())
		student := studentPrincipal()
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)
		holder.Enrollments.On("FindByCourseAndStudent", mock.Anything, course.ID, student.ID).Return(nil, nil)
		holder.Enrollments.On("CreateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Enrollment")).Return(nil)
		holder.Courses.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, course.ID).Return(course, nil)
		holder.Courses.On("UpdateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Course")).Return(nil)

		enrollment, err := svc.EnrollCourse(context.Background(), course.ID.String(), student)

		assert.NoError(t, err)
		assert.Equal(t, course.ID, enrollment.CourseID)
		assert.Equal(t, student.ID, enrollment.StudentID)
		assert.True(t, course.HasStudent(student.ID))
		assert.Equal(t, 1, holder.Tx.calls)
		holder.Enrollments.AssertExpectations(t)
	})

	t.Run("concurrent enrollments keep both students", func(t *testing.T) {
		holder, svc := newTestService()
		studentA := studentPrincipal()
		studentB := studentPrincipal()

		// Both requests observe the same pre-enrollment snapshot, the way
		// two concurrent handlers would.
		snapshot := courseOwnedBy(instructorPrincipal())
		staleA := *snapshot
		staleB := *snapshot
		holder.Courses.On("GetByID", mock.Anything, snapshot.ID).Return(&staleA, nil).Once()
		holder.Courses.On("GetByID", mock.Anything, snapshot.ID).Return(&staleB, nil).Once()
		holder.Enrollments.On("FindByCourseAndStudent", mock.Anything, snapshot.ID, mock.Anything).Return(nil, nil)
		holder.Enrollments.On("CreateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Enrollment")).Return(nil)

		// The locked in-transaction reads see the committed state: first the
		// untouched row, then the row holding student A's entry.
		lockedA := *snapshot
		lockedB := *snapshot
		lockedB.Students = []uuid.UUID{studentA.ID}
		holder.Courses.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, snapshot.ID).Return(&lockedA, nil).Once()
		holder.Courses.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, snapshot.ID).Return(&lockedB, nil).Once()

		var writes [][]uuid.UUID
		holder.Courses.On("UpdateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Course")).
			Run(func(args mock.Arguments) {
				written := args.Get(2).(*models.Course)
				writes = append(writes, append([]uuid.UUID(nil), written.Students...))
			}).Return(nil)

		_, err := svc.EnrollCourse(context.Background(), snapshot.ID.String(), studentA)
		assert.NoError(t, err)
		_, err = svc.EnrollCourse(context.Background(), snapshot.ID.String(), studentB)
		assert.NoError(t, err)

		require.Len(t, writes, 2)
		assert.Equal(t, []uuid.UUID{studentA.ID}, writes[0])
		assert.Equal(t, []uuid.UUID{studentA.ID, studentB.ID}, writes[1], "the second write must carry the first student")
	})

	t.Run("a second enrollment conflicts", func(t *testing.T) {
		holder, svc := newTestService()
		course := courseOwnedBy(instructorPrincipal())
		student := studentPrincipal()
		existing := &models.Enrollment{ID: uuid.New(), CourseID: course.ID, StudentID: student.ID}
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)
		holder.Enrollments.On("FindByCourseAndStudent", mock.Anything, course.ID, student.ID).Return(existing, nil)

		_, err := svc.EnrollCourse(context.Background(), course.ID.String(), student)

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.EqualError(t, err, "Already enrolled in this course")
		assert.Zero(t, holder.Tx.calls)
	})

	t.Run("a racing duplicate surfaces as the same conflict", func(t *testing.T) {
		holder, svc := newTestService()
		course := courseOwnedBy(instructorPrincipal())
		student := studentPrincipal()
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)
		holder.Enrollments.On("FindByCourseAndStudent", mock.Anything, course.ID, student.ID).Return(nil, nil)
		holder.Enrollments.On("CreateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Enrollment")).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "enrollments_course_student_key"})

		_, err := svc.EnrollCourse(context.Background(), course.ID.String(), student)

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.EqualError(t, err, "Already enrolled in this course")
	})

	t.Run("enrolling in a missing course is not found", func(t *testing.T) {
		holder, svc := newTestService()
		id := uuid.New()
		holder.Courses.On("GetByID", mock.Anything, id).Return(nil, apperrors.ErrCourseNotFound)

		_, err := svc.EnrollCourse(context.Background(), id.String(), studentPrincipal())

		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestReviewCourse(t *testing.T) {
	t.Run("rejects ratings outside 1 to 5 before any read", func(t *testing.T) {
		holder, svc := newTestService()

		for _, rating := range []int{0, 6, -1} {
			_, err := svc.ReviewCourse(context.Background(), uuid.NewString(), studentPrincipal(), &dto.ReviewRequest{Rating: rating})
			assert.ErrorIs(t, err, apperrors.ErrInvalidRating)
		}
		holder.Courses.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("only enrolled students may review", func(t *testing.T) {
		holder, svc := newTestService()
		course := courseOwnedBy(instructorPrincipal())
		student := studentPrincipal()
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)
		holder.Enrollments.On("FindByCourseAndStudent", mock.Anything, course.ID, student.ID).Return(nil, nil)

		_, err := svc.ReviewCourse(context.Background(), course.ID.String(), student, &dto.ReviewRequest{Rating: 5})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.EqualError(t, err, "Not enrolled in this course")
		assert.Zero(t, holder.Tx.calls)
	})

	t.Run("one review per student per course", func(t *testing.T) {
		holder, svc := newTestService()
		course := courseOwnedBy(instructorPrincipal())
		student := studentPrincipal()
		course.Reviews = []models.Review{{User: student.ID, Username: student.Name, Rating: 4}}
		enrollment := &models.Enrollment{ID: uuid.New(), CourseID: course.ID, StudentID: student.ID}
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)
		holder.Enrollments.On("FindByCourseAndStudent", mock.Anything, course.ID, student.ID).Return(enrollment, nil)

		_, err := svc.ReviewCourse(context.Background(), course.ID.String(), student, &dto.ReviewRequest{Rating: 5})

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.EqualError(t, err, "Already reviewed this course")
	})

	t.Run("appends the review to the course", func(t *testing.T) {
		holder, svc := newTestService()
		course := courseOwnedBy(instructorPrincipal())
		student := studentPrincipal()
		enrollment := &models.Enrollment{ID: uuid.New(), CourseID: course.ID, StudentID: student.ID}
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)
		holder.Enrollments.On("FindByCourseAndStudent", mock.Anything, course.ID, student.ID).Return(enrollment, nil)
		holder.Courses.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, course.ID).Return(course, nil)
		holder.Courses.On("UpdateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Course")).Return(nil)

		got, err := svc.ReviewCourse(context.Background(), course.ID.String(), student, &dto.ReviewRequest{
			Rating:  5,
			Comment: "Clear and practical",
		})

		assert.NoError(t, err)
		assert.Len(t, got.Reviews, 1)
		assert.Equal(t, student.ID, got.Reviews[0].User)
		assert.Equal(t, student.Name, got.Reviews[0].Username)
		assert.Equal(t, 5, got.Reviews[0].Rating)
		assert.Equal(t, "Clear and practical", got.Reviews[0].Comment)
		assert.Equal(t, 1, holder.Tx.calls)
		holder.Courses.AssertExpectations(t)
	})

	t.Run("a review landing concurrently is caught on the locked read", func(t *testing.T) {
		holder, svc := newTestService()
		course := courseOwnedBy(instructorPrincipal())
		student := studentPrincipal()
		enrollment := &models.Enrollment{ID: uuid.New(), CourseID: course.ID, StudentID: student.ID}

		// The pre-transaction snapshot has no review yet, but by the time
		// the row lock is taken the student's review is already committed.
		locked := *course
		locked.Reviews = []models.Review{{User: student.ID, Username: student.Name, Rating: 4}}
		holder.Courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)
		holder.Enrollments.On("FindByCourseAndStudent", mock.Anything, course.ID, student.ID).Return(enrollment, nil)
		holder.Courses.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, course.ID).Return(&locked, nil)

		_, err := svc.ReviewCourse(context.Background(), course.ID.String(), student, &dto.ReviewRequest{Rating: 5})

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.EqualError(t, err, "Already reviewed this course")
		holder.Courses.AssertNotCalled(t, "UpdateTx", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent reviews by different students both survive", func(t *testing.T) {
		holder, svc := newTestService()
		snapshot := courseOwnedBy(instructorPrincipal())
		studentA := studentPrincipal()
		studentB := studentPrincipal()

		staleA := *snapshot
		staleB := *snapshot
		holder.Courses.On("GetByID", mock.Anything, snapshot.ID).Return(&staleA, nil).Once()
		holder.Courses.On("GetByID", mock.Anything, snapshot.ID).Return(&staleB, nil).Once()
		holder.Enrollments.On("FindByCourseAndStudent", mock.Anything, snapshot.ID, mock.Anything).
			Return(&models.Enrollment{ID: uuid.New(), CourseID: snapshot.ID}, nil)

		lockedA := *snapshot
		lockedB := *snapshot
		lockedB.Reviews = []models.Review{{User: studentA.ID, Username: studentA.Name, Rating: 5}}
		holder.Courses.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, snapshot.ID).Return(&lockedA, nil).Once()
		holder.Courses.On("GetByIDForUpdateTx", mock.Anything, mock.Anything, snapshot.ID).Return(&lockedB, nil).Once()

		var writes [][]models.Review
		holder.Courses.On("UpdateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Course")).
			Run(func(args mock.Arguments) {
				written := args.Get(2).(*models.Course)
				writes = append(writes, append([]models.Review(nil), written.Reviews...))
			}).Return(nil)

		_, err := svc.ReviewCourse(context.Background(), snapshot.ID.String(), studentA, &dto.ReviewRequest{Rating: 5})
		assert.NoError(t, err)
		_, err = svc.ReviewCourse(context.Background(), snapshot.ID.String(), studentB, &dto.ReviewRequest{Rating: 3})
		assert.NoError(t, err)

		require.Len(t, writes, 2)
		require.Len(t, writes[1], 2, "the second write must carry the first review")
		assert.Equal(t, studentA.ID, writes[1][0].User)
		assert.Equal(t, studentB.ID, writes[1][1].User)
	})
}

func TestListCourses(t *testing.T) {
	t.Run("defaults page and size", func(t *testing.T) {
		holder, svc := newTestService()
		holder.Courses.On("GetAll", mock.Anything, mock.MatchedBy(func(f dto.CourseFilter) bool {
			return f.Page == 1 && f.PageSize == 10
		})).Return([]models.Course{}, int64(0), nil)

		resp, err := svc.ListCourses(context.Background(), dto.CourseFilter{})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), resp.TotalAmount)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 0, resp.TotalPages)
	})

	t.Run("computes total pages from the full match count", func(t *testing.T) {
		holder, svc := newTestService()
		courses := []models.Course{*courseOwnedBy(instructorPrincipal())}
		holder.Courses.On("GetAll", mock.Anything, mock.AnythingOfType("dto.CourseFilter")).
			Return(courses, int64(25), nil)

		resp, err := svc.ListCourses(context.Background(), dto.CourseFilter{Page: 2, PageSize: 10})

		assert.NoError(t, err)
		assert.Equal(t, int64(25), resp.TotalAmount)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 3, resp.TotalPages)
		assert.Len(t, resp.Courses, 1)
	})

	t.Run("oversized page size falls back to the default", func(t *testing.T) {
		holder, svc := newTestService()
		holder.Courses.On("GetAll", mock.Anything, mock.MatchedBy(func(f dto.CourseFilter) bool {
			return f.PageSize == 10
		})).Return([]models.Course{}, int64(0), nil)

		_, err := svc.ListCourses(context.Background(), dto.CourseFilter{Page: 1, PageSize: 5000})

		assert.NoError(t, err)
	})
}
