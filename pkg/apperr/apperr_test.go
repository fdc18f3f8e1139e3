package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflict("dup")))
	assert.Equal(t, KindInternal, KindOf(Internal(errors.New("boom"), "wrapped")))

	// Untyped errors default to internal
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidation(Validation("x")))
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsConflict(Conflict("x")))

	assert.False(t, IsNotFound(Validation("x")))
	assert.False(t, IsConflict(errors.New("x")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal(cause, "write failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "write failed")
}
