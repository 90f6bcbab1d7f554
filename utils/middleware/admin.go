package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/utils/response"
)

// RequireAdmin ensures the authenticated user has the admin role. Must run
// after AuthMiddleware.Required.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetUser(c)
		if !ok || user == nil {
			return response.Unauthorized(c, "Authentication required")
		}

		if user.Role != model.RoleAdmin {
			return response.Forbidden(c, "Admin access required")
		}

		return c.Next()
	}
}
