package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mayurii-26/drive-smart-portal/src/core/helpers"
	"github.com/mayurii-26/drive-smart-portal/src/core/models"
	"github.com/mayurii-26/drive-smart-portal/src/core/sessions"
)

// Protected admits only requests carrying a valid session cookie and
// attaches the resolved identity to the request context.
func Protected() fiber.Handler {
	return requireRole("")
}

// AdminOnly admits only sessions whose identity has the admin role.
func AdminOnly() fiber.Handler {
	return requireRole(models.RoleAdmin)
}

func requireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(sessions.CookieName)
		identity, err := sessions.Default.Authorize(token, role)
		if err == sessions.ErrForbidden {
			return helpers.HandleError(c, fiber.StatusForbidden, "Access denied. Admin privileges required.", err)
		}
		if err != nil {
			return helpers.HandleError(c, fiber.StatusUnauthorized, "Not authenticated", err)
		}

		c.Locals("user_id", identity.ID)
		c.Locals("identity", identity)
		return c.Next()
	}
}

// CurrentIdentity returns the identity attached by Protected/AdminOnly.
func CurrentIdentity(c *fiber.Ctx) (models.Identity, bool) {
	identity, ok := c.Locals("identity").(models.Identity)
	return identity, ok
}
