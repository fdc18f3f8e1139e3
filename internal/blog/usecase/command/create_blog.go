package command

import (
	"time"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/pkg/apperr"
)

// CreateBlogCommand represents the command to create a blog
type CreateBlogCommand struct {
	Title     string
	Content   string
	TagsCSV   string
	Thumbnail string // optional, placeholder when empty
	Author    domain.AuthorRef
}

// CreateBlogHandler handles blog creation command
type CreateBlogHandler struct {
	repo domain.BlogRepository
}

// NewCreateBlogHandler creates a new create blog handler
func NewCreateBlogHandler(repo domain.BlogRepository) *CreateBlogHandler {
	return &CreateBlogHandler{repo: repo}
}

// Handle executes the create blog command
func (h *CreateBlogHandler) Handle(cmd CreateBlogCommand) (*domain.Blog, error) {
	// Validation
	if cmd.Title == "" {
		return nil, apperr.Validation("title is required")
	}
	if cmd.Content == "" {
		return nil, apperr.Validation("content is required")
	}
	if cmd.TagsCSV == "" {
		return nil, apperr.Validation("tags are required")
	}
	if cmd.Author.ID == 0 {
		return nil, apperr.Validation("author is required")
	}

	thumbnail := cmd.Thumbnail
	if thumbnail == "" {
		thumbnail = domain.DefaultThumbnail
	}

	blog := &domain.Blog{
		Title:     cmd.Title,
		Content:   cmd.Content,
		Thumbnail: thumbnail,
		Author:    cmd.Author,
		Tags:      domain.ParseTags(cmd.TagsCSV),
		Likes:     []uint{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(blog); err != nil {
		return nil, err
	}

	return blog, nil
}
