package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/YassenAli/Mentoria/internal/app/models"
	"github.com/YassenAli/Mentoria/internal/app/models/dto"
)

type CourseServiceMock struct {
	mock.Mock
}

func (m *CourseServiceMock) ListCourses(ctx context.Context, filter dto.CourseFilter) (*dto.CourseListResponse, error) {
	args := m.Called(ctx, filter)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CourseListResponse), args.Error(1)
}

func (m *CourseServiceMock) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *CourseServiceMock) CreateCourse(ctx context.Context, principal models.Principal, req *dto.CreateCourseRequest) (*models.Course, error) {
	args := m.Called(ctx, principal, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *CourseServiceMock) UpdateCourse(ctx context.Context, id string, principal models.Principal, req *dto.UpdateCourseRequest) (*models.Course, error) {
	args := m.Called(ctx, id, principal, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *CourseServiceMock) DeleteCourse(ctx context.Context, id string, principal models.Principal) error {
	return m.Called(ctx, id, principal).Error(0)
}

func (m *CourseServiceMock) EnrollCourse(ctx context.Context, id string, principal models.Principal) (*models.Enrollment, error) {
	args := m.Called(ctx, id, principal)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enrollment), args.Error(1)
}

func (m *CourseServiceMock) ReviewCourse(ctx context.Context, id string, principal models.Principal, req *dto.ReviewRequest) (*models.Course, error) {
	args := m.Called(ctx, id, principal, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}
