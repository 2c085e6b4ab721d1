package progressRoutes

import (
	progressController "lms/controllers/progress"
	"lms/middleware"
	"lms/models"
	progressValidator "lms/validators/progress"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/api/progress", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent))

	progressGroup.Post("/complete", progressValidator.MarkComplete(), progressController.MarkComplete)
	progressGroup.Get("/course/:courseId", progressController.GetCourseProgress)
}
