package lessonController

import (
	"errors"

	"lms/database"
	"lms/middleware"
	"lms/models"
	lessonValidator "lms/validators/lesson"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateLesson adds a lesson to a course owned by the caller
func CreateLesson(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedLesson").(*lessonValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if course.InstructorID != userID {
		return middleware.JsonError(c, fiber.StatusForbidden, "Not authorized to add lessons to this course")
	}

	lesson := models.Lesson{
		Title:    reqData.Title,
		Content:  reqData.Content,
		CourseID: reqData.CourseID,
		Order:    reqData.Order,
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.ServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Lesson created successfully",
		"lesson":  lesson,
	})
}

// GetCourseLessons lists a course's lessons ordered for display. Ties on
// order fall back to insertion order.
func GetCourseLessons(c *fiber.Ctx) error {
	var lessons []models.Lesson
	err := database.Database.Db.
		Where("course_id = ?", c.Params("courseId")).
		Order("sequence_order asc, id asc").
		Find(&lessons).Error
	if err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(lessons)
}

// GetLesson returns a single lesson with its parent course resolved
func GetLesson(c *fiber.Ctx) error {
	var lesson models.Lesson
	err := database.Database.Db.
		Preload("Course").
		First(&lesson, "id = ?", c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return middleware.ServerError(c, err)
	}

	return c.JSON(lesson)
}

// UpdateLesson merges fields into a lesson whose parent course the caller owns
func UpdateLesson(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedLessonUpdate").(*lessonValidator.UpdateLessonRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Preload("Course").First(&lesson, "id = ?", c.Params("id")).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}

	// Ownership traverses the lesson -> course edge
	if lesson.Course.InstructorID != userID {
		return middleware.JsonError(c, fiber.StatusForbidden, "Not authorized to update this lesson")
	}

	if reqData.Title != nil {
		lesson.Title = *reqData.Title
	}
	if reqData.Content != nil {
		lesson.Content = *reqData.Content
	}
	if reqData.Order != nil {
		lesson.Order = *reqData.Order
	}

	if err := db.Save(&lesson).Error; err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Lesson updated successfully",
		"lesson":  lesson,
	})
}

// DeleteLesson removes a lesson whose parent course the caller owns
func DeleteLesson(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Preload("Course").First(&lesson, "id = ?", c.Params("id")).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}

	if lesson.Course.InstructorID != userID {
		return middleware.JsonError(c, fiber.StatusForbidden, "Not authorized to delete this lesson")
	}

	if err := db.Delete(&lesson).Error; err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Lesson deleted successfully",
	})
}
