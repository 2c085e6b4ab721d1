package courseValidator

import (
	"lms/middleware"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateCourseRequest carries optional fields; nil means "keep prior value".
type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		reqData.Title = utils.Sanitize(reqData.Title)
		reqData.Description = utils.Sanitize(reqData.Description)

		errors := make(map[string]string)

		// Validate Title
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware. An absent or blank field keeps the
// stored value, mirroring partial-update semantics.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
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
		if reqData.Description != nil {
			clean := utils.Sanitize(*reqData.Description)
			if clean == "" {
				reqData.Description = nil
			} else {
				reqData.Description = &clean
			}
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
