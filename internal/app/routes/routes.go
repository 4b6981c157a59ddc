package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/YassenAli/Mentoria/internal/app/controllers"
	"github.com/YassenAli/Mentoria/internal/app/models"
	"github.com/YassenAli/Mentoria/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	courses := api.Group("/courses")
	{
		// Public routes
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourseByID)

		// Authenticated routes
		authenticated := courses.Group("")
		authenticated.Use(authMiddleware.JWTAuth())
		{
			instructorOnly := authenticated.Group("")
			instructorOnly.Use(authMiddleware.RoleRequired(models.RoleInstructor))
			{
				instructorOnly.POST("", courseController.CreateCourse)
			}

			// Ownership for update/delete is checked in the service against
			// the course's recorded instructor.
			authenticated.PUT("/:id", courseController.UpdateCourse)
			authenticated.DELETE("/:id", courseController.DeleteCourse)

			studentOnly := authenticated.Group("")
			studentOnly.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				studentOnly.POST("/:id/enroll", courseController.EnrollCourse)
			}

			authenticated.POST("/:id/review", courseController.ReviewCourse)
		}
	}
}
