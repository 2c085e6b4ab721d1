package discussionController

import (
	"errors"

	"lms/database"
	"lms/middleware"
	"lms/models"
	discussionValidator "lms/validators/discussion"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AskQuestion opens a discussion thread on a course
func AskQuestion(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedQuestion").(*discussionValidator.AskQuestionRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	discussion := models.Discussion{
		CourseID: reqData.CourseID,
		UserID:   userID,
		Question: reqData.Question,
	}

	db := database.Database.Db
	if err := db.Create(&discussion).Error; err != nil {
		return middleware.ServerError(c, err)
	}

	db.Preload("User").First(&discussion, discussion.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Question posted",
		"discussion": discussion,
	})
}

// GetCourseDiscussions lists a course's threads newest-first, answers in
// submission order with their authors resolved
func GetCourseDiscussions(c *fiber.Ctx) error {
	var discussions []models.Discussion
	err := database.Database.Db.
		Preload("User").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("Answers.User").
		Where("course_id = ?", c.Params("courseId")).
		Order("created_at desc").
		Find(&discussions).Error
	if err != nil {
		return middleware.ServerError(c, err)
	}

	return c.JSON(discussions)
}

// AddAnswer appends an answer to a thread
func AddAnswer(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAnswer").(*discussionValidator.AnswerRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var discussion models.Discussion
	if err := db.First(&discussion, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonError(c, fiber.StatusNotFound, "Discussion not found")
		}
		return middleware.ServerError(c, err)
	}

	answer := models.DiscussionAnswer{
		DiscussionID: discussion.ID,
		UserID:       userID,
		Answer:       reqData.Answer,
	}
	if err := db.Create(&answer).Error; err != nil {
		return middleware.ServerError(c, err)
	}

	// Return the full thread
	db.Preload("User").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("Answers.User").
		First(&discussion, discussion.ID)

	return c.JSON(fiber.Map{
		"message":    "Answer added",
		"discussion": discussion,
	})
}
