package courseController

import (
	"errors"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourse persists a new course owned by the calling teacher
func CreateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		InstructorID: userID,
	}

	db := database.Database.Db
	if err := db.Create(&course).Error; err != nil {
		return middleware.ServerError(c, err)
	}

	// Resolve the instructor for the response
	db.Preload("Instructor").First(&course, course.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course created successfully",
		"course":  course,
	})
}

// GetAllCourses lists every course with instructor and enrolled students resolved
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := database.Database.Db.
		Preload("Instructor").
		Preload("StudentsEnrolled").
		Find(&courses).Error
	if err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(courses)
}

// GetCourse returns a single course
func GetCourse(c *fiber.Ctx) error {
	var course models.Course
	err := database.Database.Db.
		Preload("Instructor").
		Preload("StudentsEnrolled").
		First(&course, "id = ?", c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ServerError(c, err)
	}

	return c.JSON(course)
}

// GetTeacherCourses lists the calling teacher's courses
func GetTeacherCourses(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var courses []models.Course
	err := database.Database.Db.
		Preload("StudentsEnrolled").
		Where("instructor_id = ?", userID).
		Find(&courses).Error
	if err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(courses)
}

// UpdateCourse merges title/description into an owned course
func UpdateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if course.InstructorID != userID {
		return middleware.JsonError(c, fiber.StatusForbidden, "Not authorized to update this course")
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Course updated successfully",
		"course":  course,
	})
}

// DeleteCourse removes an owned course. Dependent lessons, enrollments,
// grades, discussions and progress rows are left in place.
func DeleteCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if course.InstructorID != userID {
		return middleware.JsonError(c, fiber.StatusForbidden, "Not authorized to delete this course")
	}

	if err := db.Delete(&course).Error; err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Course deleted successfully",
	})
}
