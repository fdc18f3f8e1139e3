package query

import (
	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/pkg/apperr"
)

// GetBlogQuery represents the query to get a single blog by ID
type GetBlogQuery struct {
	ID uint
}

// GetBlogHandler handles the get blog query
type GetBlogHandler struct {
	repo domain.BlogRepository
}

// NewGetBlogHandler creates a new get blog handler
func NewGetBlogHandler(repo domain.BlogRepository) *GetBlogHandler {
	return &GetBlogHandler{repo: repo}
}

// Handle returns the full blog or a not-found error
func (h *GetBlogHandler) Handle(q GetBlogQuery) (*domain.Blog, error) {
	if q.ID == 0 {
		return nil, apperr.Validation("blog id is required")
	}
	return h.repo.FindByID(q.ID)
}
