package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "jeancro/internal/log"
	"jeancro/internal/services"
)

// RequireAdmin guards the back-office API with the bearer token issued at
// login.
func RequireAdmin(admin *services.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return jsonError(c, fiber.StatusUnauthorized, "missing bearer token")
		}
		if err := admin.Verify(token); err != nil {
			applog.Security(c, "access.denied.admin", nil)
			return jsonError(c, fiber.StatusForbidden, "access denied")
		}
		return c.Next()
	}
}
