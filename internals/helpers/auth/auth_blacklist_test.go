package helper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exeat_backend/internals/databases/dbtest"
	authModel "exeat_backend/internals/features/users/auth/model"
)

func TestDBBlacklist(t *testing.T) {
	db := dbtest.Open(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	bl := NewDBBlacklist(db, "test-secret")
	bl.Now = func() time.Time { return now }
	ctx := context.Background()

	ok, err := bl.IsBlacklisted(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, bl.Add(ctx, "token-a", now.Add(time.Hour)))
	require.NoError(t, bl.Add(ctx, "token-b", now.Add(-time.Minute)))
	// re-adding extends instead of failing on the unique index
	require.NoError(t, bl.Add(ctx, "token-a", now.Add(2*time.Hour)))

	ok, err = bl.IsBlacklisted(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = bl.IsBlacklisted(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, ok, "expired entries no longer count")

	var stored []authModel.TokenBlacklist
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 2)
	for _, row := range stored {
		assert.NotContains(t, []string{"token-a", "token-b"}, row.Token)
		assert.Len(t, row.Token, 64)
	}

	n, err := bl.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	ok, err = bl.IsBlacklisted(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHmacDependsOnSecret(t *testing.T) {
	assert.NotEqual(t, hmacHex("tok", "a"), hmacHex("tok", "b"))
	assert.Equal(t, hmacHex("tok", "a"), hmacHex("tok", "a"))
}
