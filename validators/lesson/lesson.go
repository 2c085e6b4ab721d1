package lessonValidator

import (
	"lms/middleware"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateLessonRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	CourseID uint   `json:"courseId"`
	Order    int    `json:"order"`
}

// UpdateLessonRequest carries optional fields. Order is a pointer so that an
// explicit 0 still counts as provided.
type UpdateLessonRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Order   *int    `json:"order"`
}

// CreateLesson validator middleware
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		reqData.Title = utils.Sanitize(reqData.Title)
		reqData.Content = utils.Sanitize(reqData.Content)

		errors := make(map[string]string)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validator middleware
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if reqData.Title != nil {
			clean := utils.Sanitize(*reqData.Title)
			if clean == "" {
				reqData.Title = nil
			} else {
				reqData.Title = &clean
			}
		}
		if reqData.Content != nil {
			clean := utils.Sanitize(*reqData.Content)
			if clean == "" {
				reqData.Content = nil
			} else {
				reqData.Content = &clean
			}
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}
