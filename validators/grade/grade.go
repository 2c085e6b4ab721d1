package gradeValidator

import (
	"lms/middleware"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

type AssignGradeRequest struct {
	StudentID uint     `json:"studentId"`
	CourseID  uint     `json:"courseId"`
	Grade     *float64 `json:"grade"`
	Feedback  string   `json:"feedback"`
}

// AssignGrade validator middleware
func AssignGrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignGradeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		reqData.Feedback = utils.Sanitize(reqData.Feedback)

		errors := make(map[string]string)

		if reqData.StudentID == 0 {
			errors["studentId"] = "Student ID is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.Grade == nil || *reqData.Grade < 0 || *reqData.Grade > 100 {
			errors["grade"] = "Grade must be a number between 0 and 100"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}
