package command

import (
	"time"

	"github.com/tair/blog-platform/internal/blog/domain"
	userdomain "github.com/tair/blog-platform/internal/user/domain"
	"github.com/tair/blog-platform/pkg/apperr"
)

// ToggleFavoriteCommand represents the command to toggle a blog in a
// user's favourites
type ToggleFavoriteCommand struct {
	BlogID uint
	UserID uint
}

// ToggleFavoriteHandler handles the favourite toggle command. The
// user's favourites list is the only owner of the relationship; blogs
// carry no reverse list.
type ToggleFavoriteHandler struct {
	blogs domain.BlogRepository
	users userdomain.UserRepository
}

// NewToggleFavoriteHandler creates a new toggle favourite handler
func NewToggleFavoriteHandler(blogs domain.BlogRepository, users userdomain.UserRepository) *ToggleFavoriteHandler {
	return &ToggleFavoriteHandler{blogs: blogs, users: users}
}

// Handle toggles membership of the blog in the user's favourites and
// returns the blog annotated with the post-toggle favourite flag.
//
// Same read-modify-write caveat as the like toggle: concurrent toggles
// for one user are last-writer-wins on the favourites column.
func (h *ToggleFavoriteHandler) Handle(cmd ToggleFavoriteCommand) (*domain.BlogView, error) {
	if cmd.UserID == 0 {
		return nil, apperr.Validation("user id is required")
	}

	blog, err := h.blogs.FindByID(cmd.BlogID)
	if err != nil {
		return nil, err
	}

	user, err := h.users.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	index := user.FavouriteIndex(cmd.BlogID)
	if index == -1 {
		user.Favourites = append(user.Favourites, cmd.BlogID)
	} else {
		user.Favourites = append(user.Favourites[:index], user.Favourites[index+1:]...)
	}
	user.UpdatedAt = time.Now()

	if err := h.users.Update(user); err != nil {
		return nil, err
	}

	view := domain.BlogView{Blog: *blog, IsFavourite: index == -1}
	return &view, nil
}
