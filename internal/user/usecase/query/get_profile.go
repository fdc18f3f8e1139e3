package query

import (
	blogdomain "github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/internal/user/domain"
	"github.com/tair/blog-platform/pkg/apperr"
)

// GetProfileQuery represents the query for a user's public profile
type GetProfileQuery struct {
	UserID uint
}

// Profile is the denormalized profile view: the user (credential
// stripped by the User JSON encoding) plus everything they wrote.
type Profile struct {
	domain.User
	Blogs []blogdomain.Blog `json:"blogs"`
}

// GetProfileHandler handles the profile query. It reads across both
// aggregates but mutates neither.
type GetProfileHandler struct {
	users domain.UserRepository
	blogs blogdomain.BlogRepository
}

// NewGetProfileHandler creates a new get profile handler
func NewGetProfileHandler(users domain.UserRepository, blogs blogdomain.BlogRepository) *GetProfileHandler {
	return &GetProfileHandler{users: users, blogs: blogs}
}

// Handle returns the merged profile view. Authored blogs are matched on
// the author snapshot id, not a foreign key.
func (h *GetProfileHandler) Handle(q GetProfileQuery) (*Profile, error) {
	if q.UserID == 0 {
		return nil, apperr.Validation("user id is required")
	}

	user, err := h.users.FindByID(q.UserID)
	if err != nil {
		return nil, err
	}

	blogs, err := h.blogs.FindByAuthor(q.UserID)
	if err != nil {
		return nil, err
	}

	return &Profile{User: *user, Blogs: blogs}, nil
}
