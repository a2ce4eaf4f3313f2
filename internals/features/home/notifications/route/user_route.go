package route

import (
	"github.com/gofiber/fiber/v2"

	"exeat_backend/internals/constants"
	"exeat_backend/internals/features/home/notifications/controller"
	authMiddleware "exeat_backend/internals/middlewares/auth"
)

// NotificationUserRoutes hangs off /requests for compatibility with existing clients.
func NotificationUserRoutes(requests fiber.Router, ctrl *controller.NotificationController) {
	notification := requests.Group("/notifications", authMiddleware.RequireCapability(constants.CapReadOwnNotifications))
	notification.Get("/", ctrl.ListMine)
	notification.Post("/read-all", ctrl.MarkAllRead)
	notification.Post("/:id/read", ctrl.MarkRead)
}
