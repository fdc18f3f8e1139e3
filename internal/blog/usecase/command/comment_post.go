package command

import (
	"time"

	"github.com/google/uuid"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/pkg/apperr"
)

// CommentPostCommand represents the command to comment on a blog
type CommentPostCommand struct {
	BlogID  uint
	Content string
	Author  domain.AuthorRef
}

// CommentPostHandler handles the comment command
type CommentPostHandler struct {
	repo domain.BlogRepository
}

// NewCommentPostHandler creates a new comment handler
func NewCommentPostHandler(repo domain.BlogRepository) *CommentPostHandler {
	return &CommentPostHandler{repo: repo}
}

// Handle appends a comment to the blog and returns the updated blog.
// The comment author is stored as a snapshot, like the blog author.
func (h *CommentPostHandler) Handle(cmd CommentPostCommand) (*domain.Blog, error) {
	if cmd.Content == "" {
		return nil, apperr.Validation("comment content is required")
	}
	if cmd.Author.ID == 0 {
		return nil, apperr.Validation("comment author is required")
	}

	blog, err := h.repo.FindByID(cmd.BlogID)
	if err != nil {
		return nil, err
	}

	blog.Comments = append(blog.Comments, domain.Comment{
		ID:      uuid.New().String(),
		Content: cmd.Content,
		Author:  cmd.Author,
	})
	blog.UpdatedAt = time.Now()

	if err := h.repo.Update(blog); err != nil {
		return nil, err
	}

	return blog, nil
}
