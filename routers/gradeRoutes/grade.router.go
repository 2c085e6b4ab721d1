package gradeRoutes

import (
	gradeController "lms/controllers/grade"
	"lms/middleware"
	"lms/models"
	gradeValidator "lms/validators/grade"

	"github.com/gofiber/fiber/v2"
)

func SetupGradeRoutes(app *fiber.App) {
	gradeGroup := app.Group("/api/grades", middleware.JWTMiddleware)

	gradeGroup.Post("/", middleware.RequireRole(models.RoleTeacher), gradeValidator.AssignGrade(), gradeController.AssignGrade)
	gradeGroup.Get("/course/:courseId", middleware.RequireRole(models.RoleTeacher), gradeController.GetCourseGrades)
	gradeGroup.Get("/my-grades", middleware.RequireRole(models.RoleStudent), gradeController.GetMyGrades)
}
