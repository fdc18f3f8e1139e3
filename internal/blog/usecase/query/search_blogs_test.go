package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/internal/blog/repository"
	"github.com/tair/blog-platform/pkg/apperr"
)

func seedTitled(t *testing.T, repo domain.BlogRepository, titles ...string) {
	t.Helper()
	for _, title := range titles {
		require.NoError(t, repo.Create(&domain.Blog{
			Title:     title,
			Content:   "content",
			Thumbnail: domain.DefaultThumbnail,
			Author:    domain.AuthorRef{ID: 1},
		}))
	}
}

func TestSearchBlogsCaseInsensitive(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	seedTitled(t, repo, "Intro to Go", "Advanced GO Patterns", "Rust for Gophers", "Python Basics")

	result, err := NewSearchBlogsHandler(repo).Handle(SearchBlogsQuery{Term: "go"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Length)
	assert.Equal(t, "go", result.Query)
}

func TestSearchBlogsSubstring(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	seedTitled(t, repo, "Microservices", "Services at Scale", "Monoliths")

	result, err := NewSearchBlogsHandler(repo).Handle(SearchBlogsQuery{Term: "Service"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Length)
}

func TestSearchBlogsNoMatch(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	seedTitled(t, repo, "Intro to Go")

	result, err := NewSearchBlogsHandler(repo).Handle(SearchBlogsQuery{Term: "kubernetes"})
	require.NoError(t, err)
	assert.Zero(t, result.Length)
	assert.Empty(t, result.Blogs)
}

func TestSearchBlogsEmptyTerm(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()

	_, err := NewSearchBlogsHandler(repo).Handle(SearchBlogsQuery{})
	assert.True(t, apperr.IsValidation(err))
}
