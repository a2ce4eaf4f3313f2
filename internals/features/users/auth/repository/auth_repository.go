package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "exeat_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

// Emails are compared lower-cased; they are stored lower-cased as well.
func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func EmailExists(db *gorm.DB, email string) (bool, error) {
	var n int64
	err := db.Model(&userModel.UserModel{}).Where("email = ?", NormalizeEmail(email)).Count(&n).Error
	return n > 0, err
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	user.Email = NormalizeEmail(user.Email)
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Update("password", hashed).Error
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
