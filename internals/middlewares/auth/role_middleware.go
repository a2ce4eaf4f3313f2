package auth

import (
	"github.com/gofiber/fiber/v2"

	"exeat_backend/internals/constants"
	helper "exeat_backend/internals/helpers"
)

// RequireCapability must run after AuthMiddleware.
func RequireCapability(capability constants.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helper.GetRoleFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - role not found")
		}
		if !role.Can(capability) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.CapabilityError(capability))
		}
		return c.Next()
	}
}
