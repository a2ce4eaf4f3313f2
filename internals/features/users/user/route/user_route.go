package route

import (
	"github.com/gofiber/fiber/v2"

	"exeat_backend/internals/constants"
	"exeat_backend/internals/features/users/user/controller"
	authMiddleware "exeat_backend/internals/middlewares/auth"
)

// UserRoutes: /users/profile/* untuk semua role yang login.
func UserRoutes(users fiber.Router, ctrl *controller.UserController) {
	profile := users.Group("/profile", authMiddleware.RequireCapability(constants.CapManageOwnProfile))
	profile.Put("/name", ctrl.UpdateName)
	profile.Put("/password", ctrl.ChangePassword)
}

// SuperAdminRoutes: /superadmin/users/*
func SuperAdminRoutes(superadmin fiber.Router, ctrl *controller.UserController) {
	u := superadmin.Group("/users", authMiddleware.RequireCapability(constants.CapManageUsers))
	u.Get("/", ctrl.List)
	u.Post("/", ctrl.Create)
	u.Put("/:id/role", ctrl.UpdateRole)
}
