package details

import (
	"github.com/gofiber/fiber/v2"

	requestController "exeat_backend/internals/features/exeats/requests/controller"
	requestRoute "exeat_backend/internals/features/exeats/requests/route"
	requestService "exeat_backend/internals/features/exeats/requests/service"
	notificationController "exeat_backend/internals/features/home/notifications/controller"
	notificationRoute "exeat_backend/internals/features/home/notifications/route"
	notificationService "exeat_backend/internals/features/home/notifications/service"
)

// ExeatRoutes: /api/requests/* (student) dan /api/admin/* (admin, super-admin)
func ExeatRoutes(api fiber.Router, requireAuth fiber.Handler, requests *requestService.ExeatRequestService, notifications *notificationService.NotificationService) {
	reqCtrl := requestController.NewExeatRequestController(requests)
	notifCtrl := notificationController.NewNotificationController(notifications)

	requestsGroup := api.Group("/requests", requireAuth)
	notificationRoute.NotificationUserRoutes(requestsGroup, notifCtrl)
	requestRoute.StudentRoutes(requestsGroup, reqCtrl)

	adminGroup := api.Group("/admin", requireAuth)
	requestRoute.AdminRoutes(adminGroup, reqCtrl)
}
