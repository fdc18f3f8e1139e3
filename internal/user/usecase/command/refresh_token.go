package command

import (
	"github.com/tair/blog-platform/internal/user/domain"
	"github.com/tair/blog-platform/pkg/apperr"
	"github.com/tair/blog-platform/pkg/auth"
)

// RefreshTokenCommand represents the command to refresh an access token
type RefreshTokenCommand struct {
	RefreshToken string
}

// RefreshTokenHandler handles token refresh command
type RefreshTokenHandler struct {
	repo domain.UserRepository
}

// NewRefreshTokenHandler creates a new refresh token handler
func NewRefreshTokenHandler(repo domain.UserRepository) *RefreshTokenHandler {
	return &RefreshTokenHandler{repo: repo}
}

// Handle validates the refresh token and issues a fresh pair. The user
// must still exist; tokens for deleted accounts are rejected.
func (h *RefreshTokenHandler) Handle(cmd RefreshTokenCommand) (*auth.TokenPair, error) {
	if cmd.RefreshToken == "" {
		return nil, apperr.Validation("refresh token is required")
	}

	claims, err := auth.ValidateRefreshToken(cmd.RefreshToken)
	if err != nil {
		return nil, apperr.Validation("invalid refresh token")
	}

	user, err := h.repo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal(err, "failed to generate tokens")
	}

	return tokens, nil
}
