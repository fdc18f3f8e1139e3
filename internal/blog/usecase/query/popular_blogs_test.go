package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/internal/blog/repository"
)

func seedWithLikes(t *testing.T, repo domain.BlogRepository, likeCounts []int) {
	t.Helper()
	for i, n := range likeCounts {
		likes := make([]uint, n)
		for j := range likes {
			likes[j] = uint(100 + j)
		}
		require.NoError(t, repo.Create(&domain.Blog{
			Title:     "Post",
			Content:   "content",
			Thumbnail: domain.DefaultThumbnail,
			Author:    domain.AuthorRef{ID: uint(i + 1)},
			Likes:     likes,
		}))
	}
}

func TestPopularBlogsRanking(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	seedWithLikes(t, repo, []int{2, 5, 0, 9, 1})

	popular, err := NewPopularBlogsHandler(repo).Handle(PopularBlogsQuery{})
	require.NoError(t, err)

	require.Equal(t, 5, popular.Total)
	// Ids by descending like count: blog 4 (9), blog 2 (5), blog 1 (2), blog 5 (1), blog 3 (0)
	ids := make([]uint, 0, len(popular.Blogs))
	for _, b := range popular.Blogs {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []uint{4, 2, 1, 5, 3}, ids)
}

func TestPopularBlogsLimit(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	seedWithLikes(t, repo, []int{1, 2, 3, 4, 5, 6, 7})

	popular, err := NewPopularBlogsHandler(repo).Handle(PopularBlogsQuery{Limit: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, popular.Total)
	require.Len(t, popular.Blogs, 3)
	assert.Len(t, popular.Blogs[0].Likes, 7)
}

func TestPopularBlogsDefaultLimit(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	seedWithLikes(t, repo, []int{1, 2, 3, 4, 5, 6, 7, 8})

	popular, err := NewPopularBlogsHandler(repo).Handle(PopularBlogsQuery{})
	require.NoError(t, err)
	assert.Len(t, popular.Blogs, 5)
}

func TestPopularBlogsTiesKeepCreationOrder(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	seedWithLikes(t, repo, []int{3, 3, 3})

	popular, err := NewPopularBlogsHandler(repo).Handle(PopularBlogsQuery{})
	require.NoError(t, err)

	ids := make([]uint, 0, len(popular.Blogs))
	for _, b := range popular.Blogs {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []uint{1, 2, 3}, ids)
}
