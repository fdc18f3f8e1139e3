package command

import (
	"time"

	"github.com/tair/blog-platform/internal/blog/domain"
)

// ImageDeleter schedules best-effort deletion of an uploaded image.
// Implementations must never block or fail the calling operation.
type ImageDeleter interface {
	ScheduleDelete(filename, category string)
}

// UpdateBlogCommand represents a partial blog update. Nil pointers mean
// "leave the field alone".
type UpdateBlogCommand struct {
	ID        uint
	Title     *string
	Content   *string
	TagsCSV   *string
	Thumbnail *string
}

// UpdateBlogHandler handles blog update command
type UpdateBlogHandler struct {
	repo   domain.BlogRepository
	images ImageDeleter
}

// NewUpdateBlogHandler creates a new update blog handler
func NewUpdateBlogHandler(repo domain.BlogRepository, images ImageDeleter) *UpdateBlogHandler {
	return &UpdateBlogHandler{repo: repo, images: images}
}

// Handle executes the update blog command
func (h *UpdateBlogHandler) Handle(cmd UpdateBlogCommand) (*domain.Blog, error) {
	blog, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	previousThumbnail := blog.Thumbnail

	if cmd.Title != nil {
		blog.Title = *cmd.Title
	}
	if cmd.Content != nil {
		blog.Content = *cmd.Content
	}
	if cmd.TagsCSV != nil {
		blog.Tags = domain.ParseTags(*cmd.TagsCSV)
	}
	if cmd.Thumbnail != nil && *cmd.Thumbnail != "" {
		blog.Thumbnail = *cmd.Thumbnail
	}
	blog.UpdatedAt = time.Now()

	if err := h.repo.Update(blog); err != nil {
		return nil, err
	}

	// The replaced image is deleted in the background. The placeholder
	// is shared across blogs and must never be removed.
	if cmd.Thumbnail != nil && *cmd.Thumbnail != "" &&
		previousThumbnail != domain.DefaultThumbnail && previousThumbnail != *cmd.Thumbnail {
		h.images.ScheduleDelete(previousThumbnail, "blog")
	}

	return blog, nil
}
