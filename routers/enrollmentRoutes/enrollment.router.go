package enrollmentRoutes

import (
	enrollmentController "lms/controllers/enrollment"
	"lms/middleware"
	"lms/models"
	enrollmentValidator "lms/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/api/enrollments", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent))

	enrollmentGroup.Post("/", enrollmentValidator.Enroll(), enrollmentController.Enroll)
	enrollmentGroup.Get("/my-courses", enrollmentController.GetMyEnrollments)
	enrollmentGroup.Delete("/:courseId", enrollmentController.Unenroll)
}
