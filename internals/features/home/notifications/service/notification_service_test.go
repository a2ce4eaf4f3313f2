package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exeat_backend/internals/databases/dbtest"
	"exeat_backend/internals/helpers/apperror"
)

func TestMarkRead(t *testing.T) {
	s := NewNotificationService(dbtest.Open(t))
	ctx := context.Background()
	owner, stranger := uuid.New(), uuid.New()

	require.NoError(t, s.Notify(ctx, owner, "Your exeat request for \"Visit\" has been submitted."))
	rows, err := s.ListForUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	id := rows[0].NotificationID
	assert.False(t, rows[0].NotificationRead)

	_, err = s.MarkRead(ctx, uuid.New(), owner)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	_, err = s.MarkRead(ctx, id, stranger)
	assert.True(t, errors.Is(err, apperror.ErrAuthorization))

	rows, err = s.ListForUser(ctx, owner)
	require.NoError(t, err)
	assert.False(t, rows[0].NotificationRead, "stranger must not flip the flag")

	n, err := s.MarkRead(ctx, id, owner)
	require.NoError(t, err)
	assert.True(t, n.NotificationRead)

	// idempotent
	n, err = s.MarkRead(ctx, id, owner)
	require.NoError(t, err)
	assert.True(t, n.NotificationRead)
}

func TestMarkAllRead(t *testing.T) {
	s := NewNotificationService(dbtest.Open(t))
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	for _, msg := range []string{"one", "two", "three"} {
		require.NoError(t, s.Notify(ctx, a, msg))
	}
	require.NoError(t, s.Notify(ctx, b, "other"))

	n, err := s.MarkAllRead(ctx, a)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	n, err = s.MarkAllRead(ctx, a)
	require.NoError(t, err)
	assert.Zero(t, n)

	rows, err := s.ListForUser(ctx, b)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].NotificationRead)
}
