package gradeController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	gradeValidator "lms/validators/grade"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// AssignGrade upserts the grade for (student, course). The write is a single
// INSERT ... ON CONFLICT keyed on the composite unique index, so concurrent
// assignments cannot produce duplicate rows.
func AssignGrade(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedGrade").(*gradeValidator.AssignGradeRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if course.InstructorID != userID {
		return middleware.JsonError(c, fiber.StatusForbidden, "Not authorized to grade this course")
	}

	grade := models.Grade{
		StudentID:  reqData.StudentID,
		CourseID:   reqData.CourseID,
		Grade:      *reqData.Grade,
		Feedback:   reqData.Feedback,
		GradedByID: userID,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"grade", "feedback", "graded_by_id", "updated_at"}),
	}).Create(&grade).Error
	if err != nil {
		return middleware.ServerError(c, err)
	}

	db.Preload("Student").First(&grade, "student_id = ? AND course_id = ?", reqData.StudentID, reqData.CourseID)

	return c.JSON(fiber.Map{
		"message": "Grade assigned successfully",
		"grade":   grade,
	})
}

// GetCourseGrades lists all grades of an owned course
func GetCourseGrades(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, "id = ?", c.Params("courseId")).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if course.InstructorID != userID {
		return middleware.JsonError(c, fiber.StatusForbidden, "Not authorized")
	}

	var grades []models.Grade
	err := db.Preload("Student").
		Where("course_id = ?", course.ID).
		Find(&grades).Error
	if err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(grades)
}

// GetMyGrades lists the calling student's grades with course and grader resolved
func GetMyGrades(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var grades []models.Grade
	err := database.Database.Db.
		Preload("Course").
		Preload("GradedBy").
		Where("student_id = ?", userID).
		Find(&grades).Error
	if err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(grades)
}
