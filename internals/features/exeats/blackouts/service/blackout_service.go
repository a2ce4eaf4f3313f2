package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"exeat_backend/internals/features/exeats/blackouts/model"
	"exeat_backend/internals/features/exeats/blackouts/repository"
	"exeat_backend/internals/helpers/apperror"
	"exeat_backend/internals/helpers/dbtime"
)

// BlackoutService owns the blackout registry. Periods are never edited in place.
type BlackoutService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewBlackoutService(db *gorm.DB) *BlackoutService {
	return &BlackoutService{DB: db, Now: time.Now}
}

func (s *BlackoutService) Create(ctx context.Context, adminID uuid.UUID, reason string, start, end time.Time) (*model.BlackoutPeriodModel, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" || start.IsZero() || end.IsZero() {
		return nil, apperror.Validation("Reason, start date, and end date are required.")
	}
	start, end = dbtime.TruncateDay(start), dbtime.TruncateDay(end)
	if end.Before(start) {
		return nil, apperror.Validation("End date cannot be before start date.")
	}

	p := &model.BlackoutPeriodModel{
		BlackoutPeriodReason:      reason,
		BlackoutPeriodStartDate:   start,
		BlackoutPeriodEndDate:     end,
		BlackoutPeriodCreatedByID: adminID,
	}
	if err := repository.Create(s.DB.WithContext(ctx), p); err != nil {
		return nil, apperror.Internal(err, "failed to create blackout period")
	}
	return p, nil
}

func (s *BlackoutService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := repository.DeleteByID(s.DB.WithContext(ctx), id)
	if err != nil {
		return apperror.Internal(err, "failed to delete blackout period")
	}
	if !ok {
		return apperror.NotFound("Blackout date not found.")
	}
	return nil
}

// ListActive returns periods that have not ended as of the given day.
func (s *BlackoutService) ListActive(ctx context.Context, asOf time.Time) ([]model.BlackoutPeriodModel, error) {
	if asOf.IsZero() {
		asOf = dbtime.Today(s.Now)
	}
	rows, err := repository.ListActive(s.DB.WithContext(ctx), dbtime.TruncateDay(asOf))
	if err != nil {
		return nil, apperror.Internal(err, "failed to list blackout periods")
	}
	return rows, nil
}

func (s *BlackoutService) ListAll(ctx context.Context) ([]model.BlackoutPeriodModel, error) {
	rows, err := repository.ListAllWithCreator(s.DB.WithContext(ctx))
	if err != nil {
		return nil, apperror.Internal(err, "failed to list blackout periods")
	}
	return rows, nil
}

// FindOverlap must be given the caller's transaction so the check and the insert see the same state.
func (s *BlackoutService) FindOverlap(tx *gorm.DB, start, end time.Time) (*model.BlackoutPeriodModel, error) {
	return repository.FindFirstOverlap(tx, dbtime.TruncateDay(start), dbtime.TruncateDay(end))
}
