package seeds

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"exeat_backend/internals/configs"
	users "exeat_backend/internals/seeds/users/auth"
)

const DefaultUsersFile = "internals/seeds/users/auth/data_users.json"

func RunAllSeeds(db *gorm.DB, usersFile string) {
	if usersFile == "" {
		usersFile = DefaultUsersFile
	}

	//* User
	n, err := users.SeedUsersFromJSON(db, usersFile)
	if err != nil {
		configs.Log().Error("❌ seeding users failed", zap.Error(err))
		return
	}
	configs.Log().Info("seeding done", zap.Int("users_inserted", n))
}
