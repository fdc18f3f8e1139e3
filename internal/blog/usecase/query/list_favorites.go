package query

import (
	"github.com/tair/blog-platform/internal/blog/domain"
	userdomain "github.com/tair/blog-platform/internal/user/domain"
)

// ListFavoritesQuery represents the query for a user's favourite blogs
type ListFavoritesQuery struct {
	UserID uint
}

// FavoriteBlogs is the resolved favourites list
type FavoriteBlogs struct {
	Total int           `json:"total"`
	Blogs []domain.Blog `json:"blogs"`
}

// ListFavoritesHandler handles the favourites query
type ListFavoritesHandler struct {
	blogs domain.BlogRepository
	users userdomain.UserRepository
}

// NewListFavoritesHandler creates a new favourites handler
func NewListFavoritesHandler(blogs domain.BlogRepository, users userdomain.UserRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{blogs: blogs, users: users}
}

// Handle resolves the user's favourites against the blog store in the
// order they were favourited. Ids pointing at deleted blogs are stale,
// not an error: they are silently dropped and the total reflects only
// the blogs that still exist.
func (h *ListFavoritesHandler) Handle(q ListFavoritesQuery) (*FavoriteBlogs, error) {
	user, err := h.users.FindByID(q.UserID)
	if err != nil {
		return nil, err
	}

	found, err := h.blogs.FindByIDs(user.Favourites)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]domain.Blog, len(found))
	for _, b := range found {
		byID[b.ID] = b
	}

	blogs := make([]domain.Blog, 0, len(found))
	for _, id := range user.Favourites {
		if b, ok := byID[id]; ok {
			blogs = append(blogs, b)
		}
	}

	return &FavoriteBlogs{Total: len(blogs), Blogs: blogs}, nil
}
