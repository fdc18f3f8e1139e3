package query

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/internal/blog/repository"
	"github.com/tair/blog-platform/pkg/apperr"
)

func seedBlogs(t *testing.T, repo domain.BlogRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		blog := &domain.Blog{
			Title:     fmt.Sprintf("Post %d", i),
			Content:   fmt.Sprintf("content of post %d", i),
			Thumbnail: domain.DefaultThumbnail,
			Author:    domain.AuthorRef{ID: 1, FirstName: "Ada"},
			Tags:      []string{"go"},
			Likes:     []uint{},
			Comments:  []domain.Comment{},
		}
		require.NoError(t, repo.Create(blog))
	}
}

func TestListBlogsPagination(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	seedBlogs(t, repo, 25)
	handler := NewListBlogsHandler(repo)

	// Walking every page reassembles the full creation order
	var seen []uint
	for page := 1; page <= 3; page++ {
		list, err := handler.Handle(ListBlogsQuery{Limit: 10, Page: page})
		require.NoError(t, err)

		assert.Equal(t, int64(25), list.Total)
		assert.Equal(t, page, list.Page)
		for _, b := range list.Blogs {
			seen = append(seen, b.ID)
		}
	}

	require.Len(t, seen, 25)
	for i, id := range seen {
		assert.Equal(t, uint(i+1), id)
	}
}

func TestListBlogsPastTheEnd(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	seedBlogs(t, repo, 3)

	list, err := NewListBlogsHandler(repo).Handle(ListBlogsQuery{Limit: 10, Page: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(3), list.Total)
	assert.Empty(t, list.Blogs)
}

func TestListBlogsDefaults(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	seedBlogs(t, repo, 15)

	list, err := NewListBlogsHandler(repo).Handle(ListBlogsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 10, list.Limit)
	assert.Len(t, list.Blogs, 10)
}

func TestListBlogsExcerptsContent(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	long := strings.Repeat("x", 500)
	require.NoError(t, repo.Create(&domain.Blog{
		Title:     "Long",
		Content:   long,
		Thumbnail: domain.DefaultThumbnail,
		Author:    domain.AuthorRef{ID: 1},
	}))

	list, err := NewListBlogsHandler(repo).Handle(ListBlogsQuery{})
	require.NoError(t, err)

	require.Len(t, list.Blogs, 1)
	assert.Equal(t, strings.Repeat("x", 180)+"...", list.Blogs[0].Content)

	// The stored content stays full-length
	stored, err := repo.FindByID(list.Blogs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, long, stored.Content)
}

func TestExcerpt(t *testing.T) {
	short := "short content"
	assert.Equal(t, short, Excerpt(short))

	// Exactly at the limit: unchanged, no marker
	exact := strings.Repeat("a", 180)
	assert.Equal(t, exact, Excerpt(exact))

	// One over: truncated with marker
	over := strings.Repeat("a", 181)
	assert.Equal(t, strings.Repeat("a", 180)+"...", Excerpt(over))

	// Rune-based, not byte-based
	unicode := strings.Repeat("ü", 200)
	assert.Equal(t, strings.Repeat("ü", 180)+"...", Excerpt(unicode))
}

func TestGetBlogReturnsFullContent(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	long := strings.Repeat("y", 400)
	require.NoError(t, repo.Create(&domain.Blog{
		Title:     "Full",
		Content:   long,
		Thumbnail: domain.DefaultThumbnail,
		Author:    domain.AuthorRef{ID: 1},
	}))

	blog, err := NewGetBlogHandler(repo).Handle(GetBlogQuery{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, long, blog.Content)
}

func TestGetBlogNotFound(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()

	_, err := NewGetBlogHandler(repo).Handle(GetBlogQuery{ID: 42})
	assert.True(t, apperr.IsNotFound(err))
}
