package user

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"exeat_backend/internals/configs"
	"exeat_backend/internals/constants"
	authRepo "exeat_backend/internals/features/users/auth/repository"
	authService "exeat_backend/internals/features/users/auth/service"
	"exeat_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	MatricNo *string `json:"matric_no"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) (int, error) {
	configs.Log().Info("📥 reading seed users", zap.String("file", filePath))

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}
	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}
	return SeedUsers(db, inputs)
}

// SeedUsers inserts users whose email is not taken yet; existing rows are left untouched.
func SeedUsers(db *gorm.DB, inputs []UserSeed) (int, error) {
	inserted := 0
	for _, data := range inputs {
		role, err := constants.ParseRole(data.Role)
		if err != nil {
			return inserted, fmt.Errorf("seed %s: %w", data.Email, err)
		}
		hashed, err := authService.HashPassword(data.Password)
		if err != nil {
			return inserted, fmt.Errorf("seed %s: hash password: %w", data.Email, err)
		}

		u := model.UserModel{
			Name:     data.Name,
			Email:    authRepo.NormalizeEmail(data.Email),
			Password: hashed,
			Role:     role,
			MatricNo: data.MatricNo,
		}
		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&u)
		if res.Error != nil {
			return inserted, fmt.Errorf("seed %s: %w", data.Email, res.Error)
		}
		if res.RowsAffected == 0 {
			configs.Log().Info("ℹ️ seed user exists, skipped", zap.String("email", u.Email))
			continue
		}
		inserted++
		configs.Log().Info("✅ seed user inserted", zap.String("email", u.Email), zap.String("role", string(role)))
	}
	return inserted, nil
}
