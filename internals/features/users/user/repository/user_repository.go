package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"exeat_backend/internals/constants"
	"exeat_backend/internals/features/users/user/model"
)

func ListNewestFirst(db *gorm.DB) ([]model.UserModel, error) {
	var out []model.UserModel
	err := db.Order("created_at DESC").Find(&out).Error
	return out, err
}

// UpdateName reports whether the user exists.
func UpdateName(db *gorm.DB, id uuid.UUID, name string) (bool, error) {
	res := db.Model(&model.UserModel{}).Where("id = ?", id).Update("name", name)
	return res.RowsAffected > 0, res.Error
}

func UpdateRole(db *gorm.DB, id uuid.UUID, role constants.Role) (bool, error) {
	res := db.Model(&model.UserModel{}).Where("id = ?", id).Update("role", role)
	return res.RowsAffected > 0, res.Error
}
