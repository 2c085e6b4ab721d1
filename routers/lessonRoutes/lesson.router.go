package lessonRoutes

import (
	lessonController "lms/controllers/lesson"
	"lms/middleware"
	"lms/models"
	lessonValidator "lms/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

func SetupLessonRoutes(app *fiber.App) {
	lessonGroup := app.Group("/api/lessons", middleware.JWTMiddleware)

	lessonGroup.Post("/", middleware.RequireRole(models.RoleTeacher), lessonValidator.CreateLesson(), lessonController.CreateLesson)
	lessonGroup.Get("/course/:courseId", lessonController.GetCourseLessons)
	lessonGroup.Get("/:id", lessonController.GetLesson)
	lessonGroup.Put("/:id", middleware.RequireRole(models.RoleTeacher), lessonValidator.UpdateLesson(), lessonController.UpdateLesson)
	lessonGroup.Delete("/:id", middleware.RequireRole(models.RoleTeacher), lessonController.DeleteLesson)
}
