package courseRoutes

import (
	courseController "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Browsing needs no auth
	courseGroup.Get("/", courseController.GetAllCourses)
	courseGroup.Get("/teacher/my-courses", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), courseController.GetTeacherCourses)
	courseGroup.Get("/:id", courseController.GetCourse)

	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), courseValidator.UpdateCourse(), courseController.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), courseController.DeleteCourse)
}
