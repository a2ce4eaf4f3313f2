package route

import (
	"github.com/gofiber/fiber/v2"

	"exeat_backend/internals/constants"
	"exeat_backend/internals/features/exeats/blackouts/controller"
	authMiddleware "exeat_backend/internals/middlewares/auth"
)

// SuperAdminRoutes: /superadmin/blackout-dates
func SuperAdminRoutes(superadmin fiber.Router, ctrl *controller.BlackoutController) {
	b := superadmin.Group("/blackout-dates", authMiddleware.RequireCapability(constants.CapManageBlackouts))
	b.Get("/", ctrl.ListAll)
	b.Post("/", ctrl.Create)
	b.Delete("/:id", ctrl.Delete)
}

// UserRoutes: /users/blackout-dates (yang belum berakhir)
func UserRoutes(users fiber.Router, ctrl *controller.BlackoutController) {
	users.Get("/blackout-dates", authMiddleware.RequireCapability(constants.CapViewBlackouts), ctrl.ListActive)
}
