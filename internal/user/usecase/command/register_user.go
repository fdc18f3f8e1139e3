package command

import (
	"strings"
	"time"

	"github.com/tair/blog-platform/internal/user/domain"
	"github.com/tair/blog-platform/pkg/apperr"
	"github.com/tair/blog-platform/pkg/auth"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Avatar    string
}

// AuthResponse carries the registered/authenticated user and tokens
type AuthResponse struct {
	User  *domain.User    `json:"user"`
	Token *auth.TokenPair `json:"token"`
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*AuthResponse, error) {
	// Validation
	if cmd.Email == "" {
		return nil, apperr.Validation("email is required")
	}
	if !strings.Contains(cmd.Email, "@") {
		return nil, apperr.Validation("email is malformed")
	}
	if cmd.Password == "" {
		return nil, apperr.Validation("password is required")
	}
	if len(cmd.Password) < 6 {
		return nil, apperr.Validation("password must be at least 6 characters")
	}
	if cmd.FirstName == "" {
		return nil, apperr.Validation("first name is required")
	}
	if cmd.LastName == "" {
		return nil, apperr.Validation("last name is required")
	}

	if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
		return nil, apperr.Conflict("user already exists")
	}

	hashed, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, apperr.Internal(err, "failed to hash password")
	}

	user := &domain.User{
		Email:      cmd.Email,
		FirstName:  cmd.FirstName,
		LastName:   cmd.LastName,
		Avatar:     cmd.Avatar,
		Bio:        "",
		Password:   hashed,
		Favourites: []uint{},
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, err
	}

	tokens, err := auth.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal(err, "failed to generate tokens")
	}

	return &AuthResponse{User: user, Token: tokens}, nil
}
