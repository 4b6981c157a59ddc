package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/YassenAli/Mentoria/internal/app/models"
)

type EnrollmentRepositoryMock struct {
	mock.Mock
}

func (m *EnrollmentRepositoryMock) FindByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (*models.Enrollment, error) {
	args := m.Called(ctx, courseID, studentID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enrollment), args.Error(1)
}

func (m *EnrollmentRepositoryMock) CreateTx(ctx context.Context, tx pgx.Tx, enrollment *models.Enrollment) error {
	return m.Called(ctx, tx, enrollment).Error(0)
}

func (m *EnrollmentRepositoryMock) DeleteByCourseTx(ctx context.Context, tx pgx.Tx, courseID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tx, courseID)

	return args.Get(0).(int64), args.Error(1)
}
