package query

import (
	"sort"

	"github.com/tair/blog-platform/internal/blog/domain"
)

const defaultPopularLimit = 5

// PopularBlogsQuery represents the query for the most liked blogs
type PopularBlogsQuery struct {
	Limit int
}

// PopularBlogs is the ranked result
type PopularBlogs struct {
	Total int           `json:"total"`
	Blogs []domain.Blog `json:"blogs"`
}

// PopularBlogsHandler handles the popular blogs query
type PopularBlogsHandler struct {
	repo domain.BlogRepository
}

// NewPopularBlogsHandler creates a new popular blogs handler
func NewPopularBlogsHandler(repo domain.BlogRepository) *PopularBlogsHandler {
	return &PopularBlogsHandler{repo: repo}
}

// Handle ranks all blogs by like count descending. The sort is stable,
// so ties keep their creation order.
func (h *PopularBlogsHandler) Handle(q PopularBlogsQuery) (*PopularBlogs, error) {
	limit := q.Limit
	if limit < 1 {
		limit = defaultPopularLimit
	}

	blogs, err := h.repo.FindAll(0, 0)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(blogs, func(i, j int) bool {
		return len(blogs[i].Likes) > len(blogs[j].Likes)
	})

	if len(blogs) > limit {
		blogs = blogs[:limit]
	}

	return &PopularBlogs{Total: len(blogs), Blogs: blogs}, nil
}
