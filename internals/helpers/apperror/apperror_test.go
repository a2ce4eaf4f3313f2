package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	err := fmt.Errorf("submit: %w", BlackoutConflict("Exams"))
	assert.True(t, errors.Is(err, ErrBlackoutConflict))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, KindBlackoutConflict, KindOf(err))

	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	cause := errors.New("disk full")
	wrapped := Internal(cause, "failed to save")
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "failed to save: disk full", wrapped.Error())
}
