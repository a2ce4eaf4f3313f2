package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "exeat_backend/internals/features/users/user/model"
)

// BlackoutPeriodModel: rentang tanggal di mana pengajuan exeat baru ditolak.
// Tidak ada update in-place; hapus lalu buat ulang.
type BlackoutPeriodModel struct {
	BlackoutPeriodID          uuid.UUID `gorm:"type:uuid;primaryKey;column:blackout_period_id"          json:"blackout_period_id"`
	BlackoutPeriodReason      string    `gorm:"type:text;not null;column:blackout_period_reason"         json:"blackout_period_reason"`
	BlackoutPeriodStartDate   time.Time `gorm:"not null;index;column:blackout_period_start_date"         json:"blackout_period_start_date"`
	BlackoutPeriodEndDate     time.Time `gorm:"not null;index;column:blackout_period_end_date"           json:"blackout_period_end_date"`
	BlackoutPeriodCreatedByID uuid.UUID `gorm:"type:uuid;not null;column:blackout_period_created_by_id"  json:"blackout_period_created_by_id"`
	BlackoutPeriodCreatedAt   time.Time `gorm:"autoCreateTime;column:blackout_period_created_at"         json:"blackout_period_created_at"`

	CreatedBy *userModel.UserModel `gorm:"foreignKey:BlackoutPeriodCreatedByID;references:ID" json:"-"`
}

func (BlackoutPeriodModel) TableName() string { return "blackout_periods" }

func (m *BlackoutPeriodModel) BeforeCreate(tx *gorm.DB) error {
	if m.BlackoutPeriodID == uuid.Nil {
		m.BlackoutPeriodID = uuid.New()
	}
	return nil
}

// Overlaps is the closed-interval intersection test against [start, end].
func (m *BlackoutPeriodModel) Overlaps(start, end time.Time) bool {
	return !start.After(m.BlackoutPeriodEndDate) && !end.Before(m.BlackoutPeriodStartDate)
}
