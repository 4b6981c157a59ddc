package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/YassenAli/Mentoria/internal/app/models"
	"github.com/YassenAli/Mentoria/internal/app/models/dto"
)

type CourseRepositoryMock struct {
	mock.Mock
}

func (m *CourseRepositoryMock) GetAll(ctx context.Context, filter dto.CourseFilter) ([]models.Course, int64, error) {
	args := m.Called(ctx, filter)

	return args.Get(0).([]models.Course), args.Get(1).(int64), args.Error(2)
}

func (m *CourseRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *CourseRepositoryMock) GetByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*models.Course, error) {
	args := m.Called(ctx, tx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *CourseRepositoryMock) Create(ctx context.Context, course *models.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *CourseRepositoryMock) Update(ctx context.Context, course *models.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *CourseRepositoryMock) UpdateTx(ctx context.Context, tx pgx.Tx, course *models.Course) error {
	return m.Called(ctx, tx, course).Error(0)
}

func (m *CourseRepositoryMock) DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	return m.Called(ctx, tx, id).Error(0)
}
