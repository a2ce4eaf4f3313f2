package route

import (
	"github.com/gofiber/fiber/v2"

	"exeat_backend/internals/features/users/auth/controller"
	rateLimiter "exeat_backend/internals/middlewares"
)

// AuthRoutes mounts /auth. requireAuth guards logout only.
func AuthRoutes(api fiber.Router, ctrl *controller.AuthController, requireAuth fiber.Handler) {
	auth := api.Group("/auth")

	auth.Post("/register", rateLimiter.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", requireAuth, ctrl.Logout)
}
