package command

import (
	"time"

	"github.com/tair/blog-platform/internal/user/domain"
)

// UpdateProfileCommand represents a restricted profile update. Only the
// allow-listed fields appear here; anything else never reaches this
// handler. Nil pointers mean "leave the field alone".
type UpdateProfileCommand struct {
	UserID    uint
	FirstName *string
	LastName  *string
	Bio       *string
	Avatar    *string
}

// UpdateProfileHandler handles profile update command
type UpdateProfileHandler struct {
	repo domain.UserRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.UserRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

// Handle applies the field-level update and returns the updated user.
// The password is carried through unchanged and stays out of JSON.
func (h *UpdateProfileHandler) Handle(cmd UpdateProfileCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.FirstName != nil && *cmd.FirstName != "" {
		user.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil && *cmd.LastName != "" {
		user.LastName = *cmd.LastName
	}
	if cmd.Bio != nil {
		user.Bio = *cmd.Bio
	}
	if cmd.Avatar != nil && *cmd.Avatar != "" {
		user.Avatar = *cmd.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := h.repo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}
