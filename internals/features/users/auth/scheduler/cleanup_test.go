package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exeat_backend/internals/databases/dbtest"
	authModel "exeat_backend/internals/features/users/auth/model"
	helpersAuth "exeat_backend/internals/helpers/auth"
)

func TestRunBlacklistCleanup(t *testing.T) {
	db := dbtest.Open(t)
	bl := helpersAuth.NewDBBlacklist(db, "secret")
	ctx := context.Background()

	require.NoError(t, bl.Add(ctx, "expired", time.Now().Add(-time.Hour)))
	require.NoError(t, bl.Add(ctx, "live", time.Now().Add(time.Hour)))

	RunBlacklistCleanup(bl)

	var n int64
	require.NoError(t, db.Model(&authModel.TokenBlacklist{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestStartBlacklistCleanupScheduler(t *testing.T) {
	bl := helpersAuth.NewDBBlacklist(dbtest.Open(t), "secret")

	_, err := StartBlacklistCleanupScheduler(bl, "every tuesday")
	assert.Error(t, err)

	c, err := StartBlacklistCleanupScheduler(bl, "@hourly")
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
