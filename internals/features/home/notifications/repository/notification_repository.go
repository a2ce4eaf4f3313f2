package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"exeat_backend/internals/features/home/notifications/model"
)

func Create(db *gorm.DB, n *model.NotificationModel) error {
	return db.Create(n).Error
}

func ListByUser(db *gorm.DB, userID uuid.UUID) ([]model.NotificationModel, error) {
	var out []model.NotificationModel
	err := db.
		Where("notification_user_id = ?", userID).
		Order("notification_created_at DESC").
		Find(&out).Error
	return out, err
}

func FindByID(db *gorm.DB, id uuid.UUID) (*model.NotificationModel, error) {
	var n model.NotificationModel
	if err := db.Where("notification_id = ?", id).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkRead only touches the row when it belongs to userID.
func MarkRead(db *gorm.DB, id, userID uuid.UUID) (int64, error) {
	res := db.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Update("notification_read", true)
	return res.RowsAffected, res.Error
}

func MarkAllRead(db *gorm.DB, userID uuid.UUID) (int64, error) {
	res := db.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = ?", userID, false).
		Update("notification_read", true)
	return res.RowsAffected, res.Error
}
