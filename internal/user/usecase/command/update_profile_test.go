package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/blog-platform/internal/user/repository"
	"github.com/tair/blog-platform/pkg/apperr"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfilePartial(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	resp, err := NewRegisterUserHandler(repo).Handle(validRegister())
	require.NoError(t, err)

	updated, err := NewUpdateProfileHandler(repo).Handle(UpdateProfileCommand{
		UserID: resp.User.ID,
		Bio:    strPtr("Mathematician and writer"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Mathematician and writer", updated.Bio)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "ada@example.com", updated.Email)
}

func TestUpdateProfileClearsBio(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	resp, err := NewRegisterUserHandler(repo).Handle(validRegister())
	require.NoError(t, err)

	_, err = NewUpdateProfileHandler(repo).Handle(UpdateProfileCommand{
		UserID: resp.User.ID,
		Bio:    strPtr("something"),
	})
	require.NoError(t, err)

	// An explicit empty string clears the field; nil would leave it
	updated, err := NewUpdateProfileHandler(repo).Handle(UpdateProfileCommand{
		UserID: resp.User.ID,
		Bio:    strPtr(""),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Bio)
}

func TestUpdateProfileKeepsCredential(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	resp, err := NewRegisterUserHandler(repo).Handle(validRegister())
	require.NoError(t, err)

	_, err = NewUpdateProfileHandler(repo).Handle(UpdateProfileCommand{
		UserID:    resp.User.ID,
		FirstName: strPtr("Augusta"),
		Avatar:    strPtr("new-avatar.png"),
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Augusta", stored.FirstName)
	assert.Equal(t, "new-avatar.png", stored.Avatar)
	assert.Equal(t, resp.User.Password, stored.Password)
	assert.Equal(t, resp.User.Email, stored.Email)
}

func TestUpdateProfileNotFound(t *testing.T) {
	repo := repository.NewMemoryUserRepository()

	_, err := NewUpdateProfileHandler(repo).Handle(UpdateProfileCommand{
		UserID: 42,
		Bio:    strPtr("x"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
