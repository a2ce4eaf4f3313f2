package details

import (
	"github.com/gofiber/fiber/v2"

	authController "exeat_backend/internals/features/users/auth/controller"
	authRoute "exeat_backend/internals/features/users/auth/route"
	authService "exeat_backend/internals/features/users/auth/service"
)

func AuthRoutes(api fiber.Router, svc *authService.AuthService, requireAuth fiber.Handler) {
	authRoute.AuthRoutes(api, authController.NewAuthController(svc), requireAuth)
}
