package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"exeat_backend/internals/features/home/notifications/model"
	"exeat_backend/internals/features/home/notifications/repository"
	"exeat_backend/internals/helpers/apperror"
)

// NotificationService persists in-app notifications. Only the owner may flip the read flag.
type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, message string) error {
	return repository.Create(s.DB.WithContext(ctx), &model.NotificationModel{
		NotificationUserID:  userID,
		NotificationMessage: message,
	})
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.NotificationModel, error) {
	rows, err := repository.ListByUser(s.DB.WithContext(ctx), userID)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list notifications")
	}
	return rows, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) (*model.NotificationModel, error) {
	db := s.DB.WithContext(ctx)
	if _, err := repository.MarkRead(db, id, userID); err != nil {
		return nil, apperror.Internal(err, "failed to update notification")
	}

	row, err := repository.FindByID(db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Notification not found.")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to load notification")
	}
	if row.NotificationUserID != userID {
		return nil, apperror.Forbidden("Forbidden. You can only update your own notifications.")
	}
	return row, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := repository.MarkAllRead(s.DB.WithContext(ctx), userID)
	if err != nil {
		return 0, apperror.Internal(err, "failed to update notifications")
	}
	return n, nil
}
