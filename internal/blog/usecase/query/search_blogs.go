package query

import (
	"strings"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/pkg/apperr"
)

// SearchBlogsQuery represents a title substring search
type SearchBlogsQuery struct {
	Term string
}

// SearchResult is the list of matching blogs
type SearchResult struct {
	Length int           `json:"length"`
	Query  string        `json:"query"`
	Blogs  []domain.Blog `json:"data"`
}

// SearchBlogsHandler handles the search query with a full scan.
// Acceptable at this scale; no search index is involved.
type SearchBlogsHandler struct {
	repo domain.BlogRepository
}

// NewSearchBlogsHandler creates a new search handler
func NewSearchBlogsHandler(repo domain.BlogRepository) *SearchBlogsHandler {
	return &SearchBlogsHandler{repo: repo}
}

// Handle returns blogs whose title contains the term, case-insensitive
func (h *SearchBlogsHandler) Handle(q SearchBlogsQuery) (*SearchResult, error) {
	if q.Term == "" {
		return nil, apperr.Validation("search query is required")
	}

	blogs, err := h.repo.FindAll(0, 0)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(q.Term)
	matches := []domain.Blog{}
	for _, b := range blogs {
		if strings.Contains(strings.ToLower(b.Title), term) {
			matches = append(matches, b)
		}
	}

	return &SearchResult{Length: len(matches), Query: q.Term, Blogs: matches}, nil
}
