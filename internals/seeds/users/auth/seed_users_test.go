package user

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exeat_backend/internals/constants"
	"exeat_backend/internals/databases/dbtest"
	"exeat_backend/internals/features/users/user/model"
)

func TestSeedUsersSkipsExisting(t *testing.T) {
	db := dbtest.Open(t)
	inputs := []UserSeed{
		{Name: "Root", Email: "ROOT@school.test", Password: "secret1", Role: "super_admin"},
		{Name: "Desk", Email: "desk@school.test", Password: "secret1", Role: "ADMIN"},
	}

	n, err := SeedUsers(db, inputs)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = SeedUsers(db, inputs)
	require.NoError(t, err)
	assert.Zero(t, n)

	var root model.UserModel
	require.NoError(t, db.Where("email = ?", "root@school.test").First(&root).Error)
	assert.Equal(t, constants.RoleSuperAdmin, root.Role)

	_, err = SeedUsers(db, []UserSeed{{Name: "Bad", Email: "bad@school.test", Password: "secret1", Role: "owner"}})
	assert.Error(t, err)
}

func TestSeedUsersFromJSON(t *testing.T) {
	db := dbtest.Open(t)

	n, err := SeedUsersFromJSON(db, "data_users.json")
	require.NoError(t, err)
	assert.Positive(t, n)

	bad := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = SeedUsersFromJSON(db, bad)
	assert.Error(t, err)

	_, err = SeedUsersFromJSON(db, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
