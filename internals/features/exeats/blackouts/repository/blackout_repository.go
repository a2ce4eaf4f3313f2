package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"exeat_backend/internals/features/exeats/blackouts/model"
)

// FindFirstOverlap returns the earliest period intersecting [start, end] (closed), or nil.
// Call it with the transaction that will insert the request.
func FindFirstOverlap(tx *gorm.DB, start, end time.Time) (*model.BlackoutPeriodModel, error) {
	var p model.BlackoutPeriodModel
	err := tx.
		Where("blackout_period_start_date <= ? AND blackout_period_end_date >= ?", end, start).
		Order("blackout_period_start_date ASC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func Create(db *gorm.DB, p *model.BlackoutPeriodModel) error {
	return db.Create(p).Error
}

// DeleteByID reports whether a row was removed.
func DeleteByID(db *gorm.DB, id uuid.UUID) (bool, error) {
	res := db.Where("blackout_period_id = ?", id).Delete(&model.BlackoutPeriodModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func ListActive(db *gorm.DB, asOf time.Time) ([]model.BlackoutPeriodModel, error) {
	var out []model.BlackoutPeriodModel
	err := db.
		Where("blackout_period_end_date >= ?", asOf).
		Order("blackout_period_start_date ASC").
		Find(&out).Error
	return out, err
}

func ListAllWithCreator(db *gorm.DB) ([]model.BlackoutPeriodModel, error) {
	var out []model.BlackoutPeriodModel
	err := db.
		Preload("CreatedBy").
		Order("blackout_period_start_date DESC").
		Find(&out).Error
	return out, err
}
