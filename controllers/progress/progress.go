package progressController

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	progressValidator "lms/validators/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// MarkComplete upserts the completion flag for (student, course, lesson).
// Repeated calls succeed and refresh completedAt.
func MarkComplete(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedProgress").(*progressValidator.MarkCompleteRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	now := time.Now()
	progress := models.Progress{
		StudentID:   userID,
		CourseID:    reqData.CourseID,
		LessonID:    reqData.LessonID,
		Completed:   true,
		CompletedAt: &now,
	}

	db := database.Database.Db
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "course_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at", "updated_at"}),
	}).Create(&progress).Error
	if err != nil {
		return middleware.ServerError(c, err)
	}

	db.First(&progress, "student_id = ? AND course_id = ? AND lesson_id = ?",
		userID, reqData.CourseID, reqData.LessonID)

	return c.JSON(fiber.Map{
		"message":  "Progress updated",
		"progress": progress,
	})
}

// GetCourseProgress lists the calling student's progress rows for a course
func GetCourseProgress(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var progress []models.Progress
	err := database.Database.Db.
		Preload("Lesson").
		Where("student_id = ? AND course_id = ?", userID, c.Params("courseId")).
		Find(&progress).Error
	if err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(progress)
}
