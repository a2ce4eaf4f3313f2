package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationModel struct {
	NotificationID        uuid.UUID `gorm:"column:notification_id;primaryKey;type:uuid" json:"notification_id"`
	NotificationUserID    uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationMessage   string    `gorm:"column:notification_message;type:text;not null" json:"notification_message"`
	NotificationRead      bool      `gorm:"column:notification_read;not null;default:false" json:"notification_read"`
	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime;index" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
