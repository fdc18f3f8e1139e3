package command

import (
	"time"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/pkg/apperr"
)

// ToggleLikeCommand represents the command to toggle a user's like on a blog
type ToggleLikeCommand struct {
	BlogID uint
	UserID uint
}

// ToggleLikeResult reports the post-toggle like state
type ToggleLikeResult struct {
	IsLiked bool   `json:"isLiked"`
	Likes   []uint `json:"likes"`
}

// ToggleLikeHandler handles the like toggle command
type ToggleLikeHandler struct {
	repo domain.BlogRepository
}

// NewToggleLikeHandler creates a new toggle like handler
func NewToggleLikeHandler(repo domain.BlogRepository) *ToggleLikeHandler {
	return &ToggleLikeHandler{repo: repo}
}

// Handle executes the like toggle. The likes sequence is a duplicate-free
// membership set whose insertion order is exposed to clients, so the
// toggle appends on first call and removes in place on the second.
//
// This is a read-modify-write over the whole likes column: two callers
// racing on the same blog can lose an update. Accepted for now; an
// atomic set mutation in the store would remove the race.
func (h *ToggleLikeHandler) Handle(cmd ToggleLikeCommand) (*ToggleLikeResult, error) {
	if cmd.UserID == 0 {
		return nil, apperr.Validation("user id is required")
	}

	blog, err := h.repo.FindByID(cmd.BlogID)
	if err != nil {
		return nil, err
	}

	index := blog.LikeIndex(cmd.UserID)
	if index == -1 {
		blog.Likes = append(blog.Likes, cmd.UserID)
	} else {
		blog.Likes = append(blog.Likes[:index], blog.Likes[index+1:]...)
	}
	blog.UpdatedAt = time.Now()

	if err := h.repo.Update(blog); err != nil {
		return nil, err
	}

	return &ToggleLikeResult{
		IsLiked: index == -1,
		Likes:   blog.Likes,
	}, nil
}
