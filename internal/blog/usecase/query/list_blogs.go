package query

import (
	"github.com/tair/blog-platform/internal/blog/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	// excerptLength is the number of runes of content shown in listings
	excerptLength = 180
	// excerptMarker is appended only when content was actually truncated
	excerptMarker = "..."
)

// ListBlogsQuery represents the query to list blogs with pagination
type ListBlogsQuery struct {
	Limit int
	Page  int
}

// BlogList is a page of excerpted blogs
type BlogList struct {
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Blogs []domain.Blog `json:"blogs"`
}

// ListBlogsHandler handles the list blogs query
type ListBlogsHandler struct {
	repo domain.BlogRepository
}

// NewListBlogsHandler creates a new list blogs handler
func NewListBlogsHandler(repo domain.BlogRepository) *ListBlogsHandler {
	return &ListBlogsHandler{repo: repo}
}

// Handle returns one page of blogs in creation order, content truncated
// to an excerpt. Pages past the end yield an empty slice with the
// correct total.
func (h *ListBlogsHandler) Handle(q ListBlogsQuery) (*BlogList, error) {
	page := q.Page
	if page < 1 {
		page = defaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	total, err := h.repo.Count()
	if err != nil {
		return nil, err
	}

	blogs, err := h.repo.FindAll(limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	for i := range blogs {
		blogs[i].Content = Excerpt(blogs[i].Content)
	}

	return &BlogList{
		Total: total,
		Page:  page,
		Limit: limit,
		Blogs: blogs,
	}, nil
}

// Excerpt shortens content for listings. Content at or under the limit
// is returned unchanged, without a marker.
func Excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + excerptMarker
}
