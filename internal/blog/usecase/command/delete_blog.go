package command

import (
	"github.com/tair/blog-platform/internal/blog/domain"
)

// DeleteBlogCommand represents the command to delete a blog
type DeleteBlogCommand struct {
	ID uint
}

// DeleteBlogHandler handles blog deletion command
type DeleteBlogHandler struct {
	repo   domain.BlogRepository
	images ImageDeleter
}

// NewDeleteBlogHandler creates a new delete blog handler
func NewDeleteBlogHandler(repo domain.BlogRepository, images ImageDeleter) *DeleteBlogHandler {
	return &DeleteBlogHandler{repo: repo, images: images}
}

// Handle executes the delete blog command and returns the deleted blog
func (h *DeleteBlogHandler) Handle(cmd DeleteBlogCommand) (*domain.Blog, error) {
	blog, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return nil, err
	}

	if blog.Thumbnail != domain.DefaultThumbnail {
		h.images.ScheduleDelete(blog.Thumbnail, "blog")
	}

	return blog, nil
}
