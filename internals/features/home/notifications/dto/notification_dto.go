package dto

import (
	"time"

	"github.com/google/uuid"

	"exeat_backend/internals/features/home/notifications/model"
)

// ================== RESPONSE ==================
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToNotificationResponse(m *model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		ID:        m.NotificationID,
		UserID:    m.NotificationUserID,
		Message:   m.NotificationMessage,
		Read:      m.NotificationRead,
		CreatedAt: m.NotificationCreatedAt,
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(models))
	for i := range models {
		out = append(out, ToNotificationResponse(&models[i]))
	}
	return out
}
