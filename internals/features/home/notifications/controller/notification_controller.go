package controller

import (
	"github.com/gofiber/fiber/v2"

	"exeat_backend/internals/features/home/notifications/dto"
	"exeat_backend/internals/features/home/notifications/service"
	helper "exeat_backend/internals/helpers"
)

type NotificationController struct {
	Svc *service.NotificationService
}

func NewNotificationController(svc *service.NotificationService) *NotificationController {
	return &NotificationController{Svc: svc}
}

// 🟢 GET /api/requests/notifications
func (ctrl *NotificationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := ctrl.Svc.ListForUser(c.UserContext(), userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok", dto.ToNotificationResponseList(rows), len(rows))
}

// 🟢 POST /api/requests/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	row, err := ctrl.Svc.MarkRead(c.UserContext(), id, userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Notification marked as read", dto.ToNotificationResponse(row))
}

// 🟢 POST /api/requests/notifications/read-all → 204
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if _, err := ctrl.Svc.MarkAllRead(c.UserContext(), userID); err != nil {
		return helper.FromError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
