package userRoutes

import (
	userController "lms/controllers/user"
	"lms/middleware"
	userValidator "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Post("/register", userValidator.Register(), userController.Register)
	userGroup.Post("/login", userValidator.Login(), userController.Login)
	userGroup.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
}
