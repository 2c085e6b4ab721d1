package discussionRoutes

import (
	discussionController "lms/controllers/discussion"
	"lms/middleware"
	discussionValidator "lms/validators/discussion"

	"github.com/gofiber/fiber/v2"
)

func SetupDiscussionRoutes(app *fiber.App) {
	// Both roles can ask and answer
	discussionGroup := app.Group("/api/discussions", middleware.JWTMiddleware)

	discussionGroup.Post("/", discussionValidator.AskQuestion(), discussionController.AskQuestion)
	discussionGroup.Get("/course/:courseId", discussionController.GetCourseDiscussions)
	discussionGroup.Post("/:id/answer", discussionValidator.Answer(), discussionController.AddAnswer)
}
