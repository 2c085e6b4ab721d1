package enrollmentController

import (
	"errors"

	"lms/database"
	"lms/middleware"
	"lms/models"
	enrollmentValidator "lms/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Enroll creates an enrollment and mirrors the student into the course's
// studentsEnrolled set. Both writes happen in one transaction; the composite
// unique index on (student_id, course_id) catches concurrent duplicates.
func Enroll(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.EnrollRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	var existing models.Enrollment
	if err := db.Where("student_id = ? AND course_id = ?", userID, reqData.CourseID).
		First(&existing).Error; err == nil {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Already enrolled in this course")
	}

	enrollment := models.Enrollment{
		StudentID: userID,
		CourseID:  reqData.CourseID,
	}

	tx := db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Already enrolled in this course")
		}
		return middleware.ServerError(c, err)
	}
	student := models.User{Model: gorm.Model{ID: userID}}
	if err := tx.Model(&course).Association("StudentsEnrolled").Append(&student); err != nil {
		tx.Rollback()
		return middleware.ServerError(c, err)
	}
	if err := tx.Commit().Error; err != nil {
		return middleware.ServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Enrolled successfully",
		"enrollment": enrollment,
	})
}

// GetMyEnrollments lists the calling student's enrollments with each course's
// instructor resolved
func GetMyEnrollments(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var enrollments []models.Enrollment
	err := database.Database.Db.
		Preload("Course.Instructor").
		Where("student_id = ?", userID).
		Find(&enrollments).Error
	if err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(enrollments)
}

// Unenroll deletes the enrollment and pulls the student out of the mirror.
// The row is removed hard so the unique index allows re-enrolling later.
func Unenroll(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	db := database.Database.Db

	var enrollment models.Enrollment
	err := db.Where("student_id = ? AND course_id = ?", userID, c.Params("courseId")).
		First(&enrollment).Error
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}

	tx := db.Begin()
	if err := tx.Unscoped().Delete(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.ServerError(c, err)
	}
	course := models.Course{Model: gorm.Model{ID: enrollment.CourseID}}
	student := models.User{Model: gorm.Model{ID: userID}}
	if err := tx.Model(&course).Association("StudentsEnrolled").Delete(&student); err != nil {
		tx.Rollback()
		return middleware.ServerError(c, err)
	}
	if err := tx.Commit().Error; err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Unenrolled successfully",
	})
}
