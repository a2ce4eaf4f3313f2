package route

import (
	"github.com/gofiber/fiber/v2"

	"exeat_backend/internals/constants"
	"exeat_backend/internals/features/exeats/requests/controller"
	authMiddleware "exeat_backend/internals/middlewares/auth"
)

// StudentRoutes: /requests
func StudentRoutes(requests fiber.Router, ctrl *controller.ExeatRequestController) {
	requests.Post("/", authMiddleware.RequireCapability(constants.CapSubmitRequest), ctrl.Submit)
	requests.Get("/my", authMiddleware.RequireCapability(constants.CapViewOwnRequests), ctrl.ListMine)
	requests.Delete("/:id/cancel", authMiddleware.RequireCapability(constants.CapCancelOwnRequest), ctrl.Cancel)
}

// AdminRoutes: /admin/requests
func AdminRoutes(admin fiber.Router, ctrl *controller.ExeatRequestController) {
	r := admin.Group("/requests")
	r.Get("/", authMiddleware.RequireCapability(constants.CapViewAllRequests), ctrl.ListForAdmin)
	r.Get("/:id", authMiddleware.RequireCapability(constants.CapViewAllRequests), ctrl.Get)
	r.Post("/:id/decision", authMiddleware.RequireCapability(constants.CapDecideRequest), ctrl.Decide)
}
