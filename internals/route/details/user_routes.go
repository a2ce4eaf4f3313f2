package details

import (
	"github.com/gofiber/fiber/v2"

	blackoutController "exeat_backend/internals/features/exeats/blackouts/controller"
	blackoutRoute "exeat_backend/internals/features/exeats/blackouts/route"
	blackoutService "exeat_backend/internals/features/exeats/blackouts/service"
	userController "exeat_backend/internals/features/users/user/controller"
	userRoute "exeat_backend/internals/features/users/user/route"
	userService "exeat_backend/internals/features/users/user/service"
)

// UserRoutes: /api/users/* (semua role) dan /api/superadmin/*
func UserRoutes(api fiber.Router, requireAuth fiber.Handler, users *userService.UserService, blackouts *blackoutService.BlackoutService) {
	userCtrl := userController.NewUserController(users)
	blackoutCtrl := blackoutController.NewBlackoutController(blackouts)

	usersGroup := api.Group("/users", requireAuth)
	userRoute.UserRoutes(usersGroup, userCtrl)
	blackoutRoute.UserRoutes(usersGroup, blackoutCtrl)

	superadmin := api.Group("/superadmin", requireAuth)
	userRoute.SuperAdminRoutes(superadmin, userCtrl)
	blackoutRoute.SuperAdminRoutes(superadmin, blackoutCtrl)
}
