package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"exeat_backend/internals/configs"
	authRepo "exeat_backend/internals/features/users/auth/repository"
	authService "exeat_backend/internals/features/users/auth/service"
	helper "exeat_backend/internals/helpers"
	helpersAuth "exeat_backend/internals/helpers/auth"
)

// LocUser holds the reloaded *userModel.UserModel.
const LocUser = "user"

// AuthMiddleware verifies the access token, rejects revoked tokens and reloads
// the user so role changes apply immediately.
func AuthMiddleware(db *gorm.DB, tokens *authService.TokenService, bl helpersAuth.Blacklist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authorization token is required.")
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: Invalid or expired token.")
		}

		if bl != nil {
			revoked, err := bl.IsBlacklisted(c.UserContext(), raw)
			if err != nil {
				configs.Log().Error("blacklist lookup failed", zap.Error(err))
				return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
			}
			if revoked {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Session has been logged out. Please log in again.")
			}
		}

		userID, err := claims.ParsedUserID()
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: Invalid or expired token.")
		}

		user, err := authRepo.FindUserByID(db.WithContext(c.UserContext()), userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token: user not found.")
		}
		if err != nil {
			configs.Log().Error("auth user reload failed", zap.Error(err))
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}

		c.Locals(helper.LocUserID, user.ID)
		c.Locals(helper.LocUserRole, user.Role)
		c.Locals(helper.LocRawToken, raw)
		c.Locals(LocUser, user)
		return c.Next()
	}
}
