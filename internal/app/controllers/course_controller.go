package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YassenAli/Mentoria/internal/app/models/dto"
	"github.com/YassenAli/Mentoria/internal/app/services"
	"github.com/YassenAli/Mentoria/internal/middleware"
	"github.com/YassenAli/Mentoria/internal/pkg/helpers"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// ListCourses handles GET /api/courses with filtering, sorting and
// pagination query parameters.
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := dto.CourseFilter{
		Title:      ctx.Query("title"),
		Category:   ctx.Query("category"),
		Difficulty: ctx.Query("difficulty"),
		Instructor: ctx.Query("instructor"),
		SortBy:     ctx.DefaultQuery("sortBy", "createdAt"),
		Page:       page,
		PageSize:   size,
	}

	response, err := c.courseService.ListCourses(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCourseByID handles GET /api/courses/:id
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// CreateCourse handles POST /api/courses for instructors.
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please fill in all fields"))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// UpdateCourse handles PUT /api/courses/:id for the owning instructor.
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, ctx.Param("id"), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse handles DELETE /api/courses/:id for the owning instructor.
// Enrollments referencing the course are removed with it.
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	if err := c.courseService.DeleteCourse(ctx, ctx.Param("id"), principal); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// EnrollCourse handles POST /api/courses/:id/enroll for students.
func (c *CourseController) EnrollCourse(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	enrollment, err := c.courseService.EnrollCourse(ctx, ctx.Param("id"), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, enrollment)
}

// ReviewCourse handles POST /api/courses/:id/review for enrolled students.
func (c *CourseController) ReviewCourse(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	course, err := c.courseService.ReviewCourse(ctx, ctx.Param("id"), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}
