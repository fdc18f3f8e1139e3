package command

import (
	"github.com/tair/blog-platform/internal/user/domain"
	"github.com/tair/blog-platform/pkg/apperr"
	"github.com/tair/blog-platform/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login command
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*AuthResponse, error) {
	if cmd.Email == "" {
		return nil, apperr.Validation("email is required")
	}
	if cmd.Password == "" {
		return nil, apperr.Validation("password is required")
	}

	user, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, apperr.NotFound("invalid credentials")
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, apperr.Validation("invalid credentials")
	}

	tokens, err := auth.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal(err, "failed to generate tokens")
	}

	return &AuthResponse{User: user, Token: tokens}, nil
}
