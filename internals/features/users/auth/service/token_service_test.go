package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exeat_backend/internals/constants"
	userModel "exeat_backend/internals/features/users/user/model"
)

func TestIssueAndParse(t *testing.T) {
	ts := NewTokenService("s3cret", time.Hour)
	user := &userModel.UserModel{ID: uuid.New(), Role: constants.RoleAdmin}

	raw, exp, err := ts.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ts.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", claims.Role)
	id, err := claims.ParsedUserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.NotEmpty(t, claims.ID)

	// two tokens for the same user never collide
	raw2, _, err := ts.Issue(user)
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
}

func TestParseRejects(t *testing.T) {
	ts := NewTokenService("s3cret", time.Hour)
	user := &userModel.UserModel{ID: uuid.New(), Role: constants.RoleStudent}

	t.Run("wrong secret", func(t *testing.T) {
		raw, _, err := NewTokenService("other", time.Hour).Issue(user)
		require.NoError(t, err)
		_, err = ts.Parse(raw)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenService("s3cret", time.Minute)
		old.Now = func() time.Time { return time.Now().Add(-time.Hour) }
		raw, _, err := old.Issue(user)
		require.NoError(t, err)
		_, err = ts.Parse(raw)
		assert.Error(t, err)
	})

	t.Run("other algorithm", func(t *testing.T) {
		claims := AccessClaims{
			UserID: user.ID.String(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("s3cret"))
		require.NoError(t, err)
		_, err = ts.Parse(raw)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ts.Parse("not-a-jwt")
		assert.Error(t, err)
	})
}

func TestIssueWithoutSecret(t *testing.T) {
	_, _, err := NewTokenService("", time.Hour).Issue(&userModel.UserModel{ID: uuid.New()})
	assert.Error(t, err)
}

func TestParseWithoutSecretRejectsEmptyKeyTokens(t *testing.T) {
	claims := AccessClaims{
		UserID: uuid.NewString(),
		Role:   string(constants.RoleSuperAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(""))
	require.NoError(t, err)

	got, err := NewTokenService("", time.Hour).Parse(forged)
	assert.Error(t, err)
	assert.Nil(t, got)
}
