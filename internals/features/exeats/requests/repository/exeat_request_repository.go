package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"exeat_backend/internals/features/exeats/requests/model"
	userModel "exeat_backend/internals/features/users/user/model"
)

func Create(tx *gorm.DB, m *model.ExeatRequestModel) error {
	return tx.Create(m).Error
}

func FindByID(db *gorm.DB, id uuid.UUID) (*model.ExeatRequestModel, error) {
	var m model.ExeatRequestModel
	if err := db.Where("exeat_request_id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func FindByIDWithPeople(db *gorm.DB, id uuid.UUID) (*model.ExeatRequestModel, error) {
	var m model.ExeatRequestModel
	err := db.
		Preload("Student").
		Preload("ActionedBy").
		Where("exeat_request_id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Decision is the column set written when an admin acts on a PENDING request.
type Decision struct {
	Status     model.ExeatStatus
	Comment    *string
	ActionedBy uuid.UUID
	ActionedAt time.Time
}

// ApplyDecision is a compare-and-set on status: it returns 0 rows when the
// request is missing or no longer PENDING.
func ApplyDecision(db *gorm.DB, id uuid.UUID, d Decision) (int64, error) {
	res := db.Model(&model.ExeatRequestModel{}).
		Where("exeat_request_id = ? AND exeat_request_status = ?", id, model.StatusPending).
		Updates(map[string]any{
			"exeat_request_status":         d.Status,
			"exeat_request_admin_comment":  d.Comment,
			"exeat_request_actioned_by_id": d.ActionedBy,
			"exeat_request_actioned_at":    d.ActionedAt,
		})
	return res.RowsAffected, res.Error
}

// CancelPending flips an owned PENDING request to CANCELED; 0 rows otherwise.
func CancelPending(db *gorm.DB, id, studentID uuid.UUID) (int64, error) {
	res := db.Model(&model.ExeatRequestModel{}).
		Where("exeat_request_id = ? AND exeat_request_student_id = ? AND exeat_request_status = ?",
			id, studentID, model.StatusPending).
		Update("exeat_request_status", model.StatusCanceled)
	return res.RowsAffected, res.Error
}

func ListByStudent(db *gorm.DB, studentID uuid.UUID, limit int) ([]model.ExeatRequestModel, error) {
	q := db.
		Where("exeat_request_student_id = ?", studentID).
		Order("exeat_request_created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []model.ExeatRequestModel
	err := q.Find(&out).Error
	return out, err
}

type AdminFilter struct {
	Status *model.ExeatStatus
	Type   *model.ExeatType
	Search string
}

func ListForAdmin(db *gorm.DB, f AdminFilter) ([]model.ExeatRequestModel, error) {
	q := db.Model(&model.ExeatRequestModel{}).
		Preload("Student").
		Preload("ActionedBy")

	if f.Status != nil {
		q = q.Where("exeat_request_status = ?", *f.Status)
	}
	if f.Type != nil {
		q = q.Where("exeat_request_type = ?", *f.Type)
	}
	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		like := "%" + s + "%"
		students := db.Session(&gorm.Session{NewDB: true}).
			Model(&userModel.UserModel{}).
			Select("id").
			Where("LOWER(name) LIKE ? OR LOWER(COALESCE(matric_no, '')) LIKE ?", like, like)
		q = q.Where("exeat_request_student_id IN (?)", students)
	}

	var out []model.ExeatRequestModel
	err := q.Order("exeat_request_created_at DESC").Find(&out).Error
	return out, err
}
