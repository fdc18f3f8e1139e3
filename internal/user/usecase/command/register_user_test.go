package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/blog-platform/internal/user/repository"
	"github.com/tair/blog-platform/pkg/apperr"
	"github.com/tair/blog-platform/pkg/auth"
)

func validRegister() RegisterUserCommand {
	return RegisterUserCommand{
		Email:     "ada@example.com",
		Password:  "secret123",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestRegisterUser(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	handler := NewRegisterUserHandler(repo)

	resp, err := handler.Handle(validRegister())
	require.NoError(t, err)

	assert.Equal(t, uint(1), resp.User.ID)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Empty(t, resp.User.Favourites)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)

	// The stored credential is a hash, never the plaintext
	assert.NotEqual(t, "secret123", resp.User.Password)
	assert.True(t, auth.CheckPassword(resp.User.Password, "secret123"))
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	handler := NewRegisterUserHandler(repo)

	_, err := handler.Handle(validRegister())
	require.NoError(t, err)

	_, err = handler.Handle(validRegister())
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestRegisterUserValidation(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	handler := NewRegisterUserHandler(repo)

	cases := []struct {
		name   string
		mutate func(*RegisterUserCommand)
	}{
		{"missing email", func(c *RegisterUserCommand) { c.Email = "" }},
		{"malformed email", func(c *RegisterUserCommand) { c.Email = "not-an-email" }},
		{"missing password", func(c *RegisterUserCommand) { c.Password = "" }},
		{"short password", func(c *RegisterUserCommand) { c.Password = "12345" }},
		{"missing first name", func(c *RegisterUserCommand) { c.FirstName = "" }},
		{"missing last name", func(c *RegisterUserCommand) { c.LastName = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validRegister()
			tc.mutate(&cmd)
			_, err := handler.Handle(cmd)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		})
	}
}

func TestLoginUser(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	_, err := NewRegisterUserHandler(repo).Handle(validRegister())
	require.NoError(t, err)

	handler := NewLoginUserHandler(repo)

	resp, err := handler.Handle(LoginUserCommand{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token.AccessToken)
}

func TestLoginUserBadCredentials(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	_, err := NewRegisterUserHandler(repo).Handle(validRegister())
	require.NoError(t, err)

	handler := NewLoginUserHandler(repo)

	_, err = handler.Handle(LoginUserCommand{Email: "ada@example.com", Password: "wrong-pass"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = handler.Handle(LoginUserCommand{Email: "nobody@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestRefreshToken(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	resp, err := NewRegisterUserHandler(repo).Handle(validRegister())
	require.NoError(t, err)

	handler := NewRefreshTokenHandler(repo)

	pair, err := handler.Handle(RefreshTokenCommand{RefreshToken: resp.Token.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	resp, err := NewRegisterUserHandler(repo).Handle(validRegister())
	require.NoError(t, err)

	// An access token is not acceptable as a refresh token
	_, err = NewRefreshTokenHandler(repo).Handle(RefreshTokenCommand{RefreshToken: resp.Token.AccessToken})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestRefreshTokenInvalid(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	handler := NewRefreshTokenHandler(repo)

	_, err := handler.Handle(RefreshTokenCommand{})
	assert.True(t, apperr.IsValidation(err))

	_, err = handler.Handle(RefreshTokenCommand{RefreshToken: "garbage"})
	assert.True(t, apperr.IsValidation(err))
}
