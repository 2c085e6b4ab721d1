package middleware

import (
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole gates a route on the role resolved by JWTMiddleware. Ownership
// checks on individual records stay in the controllers; this only covers the
// role precondition.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actual, ok := c.Locals("role").(models.Role)
		if !ok {
			return JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if actual != role {
			return JsonError(c, fiber.StatusForbidden, "Access denied: insufficient role")
		}
		return c.Next()
	}
}
