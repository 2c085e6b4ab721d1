package discussionValidator

import (
	"strings"

	"lms/middleware"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

type AskQuestionRequest struct {
	CourseID uint   `json:"courseId"`
	Question string `json:"question"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

// AskQuestion validator middleware
func AskQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AskQuestionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if reqData.CourseID == 0 {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Course ID is required!")
		}
		// Length counts the trimmed input, before escaping
		if len(strings.TrimSpace(reqData.Question)) < 10 {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Question must be at least 10 characters")
		}
		reqData.Question = utils.Sanitize(reqData.Question)

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// Answer validator middleware
func Answer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AnswerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if len(strings.TrimSpace(reqData.Answer)) < 5 {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Answer must be at least 5 characters")
		}
		reqData.Answer = utils.Sanitize(reqData.Answer)

		c.Locals("validatedAnswer", reqData)
		return c.Next()
	}
}
