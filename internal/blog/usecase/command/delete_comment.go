package command

import (
	"time"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/pkg/apperr"
)

// DeleteCommentCommand represents the command to delete a comment
type DeleteCommentCommand struct {
	BlogID    uint
	CommentID string
}

// DeleteCommentHandler handles the delete comment command
type DeleteCommentHandler struct {
	repo domain.BlogRepository
}

// NewDeleteCommentHandler creates a new delete comment handler
func NewDeleteCommentHandler(repo domain.BlogRepository) *DeleteCommentHandler {
	return &DeleteCommentHandler{repo: repo}
}

// Handle removes exactly the matching comment, leaving the others in
// their original relative order, and returns the updated blog.
func (h *DeleteCommentHandler) Handle(cmd DeleteCommentCommand) (*domain.Blog, error) {
	if cmd.CommentID == "" {
		return nil, apperr.Validation("comment id is required")
	}

	blog, err := h.repo.FindByID(cmd.BlogID)
	if err != nil {
		return nil, err
	}

	index := blog.CommentIndex(cmd.CommentID)
	if index == -1 {
		return nil, apperr.NotFound("comment not found")
	}

	blog.Comments = append(blog.Comments[:index], blog.Comments[index+1:]...)
	blog.UpdatedAt = time.Now()

	if err := h.repo.Update(blog); err != nil {
		return nil, err
	}

	return blog, nil
}
