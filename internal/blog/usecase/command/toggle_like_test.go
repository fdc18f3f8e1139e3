package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/blog-platform/internal/blog/repository"
	"github.com/tair/blog-platform/pkg/apperr"
)

func TestToggleLikeRoundTrip(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	blog := seedBlog(t, repo, "")
	handler := NewToggleLikeHandler(repo)

	result, err := handler.Handle(ToggleLikeCommand{BlogID: blog.ID, UserID: 10})
	require.NoError(t, err)
	assert.True(t, result.IsLiked)
	assert.Equal(t, []uint{10}, result.Likes)

	// A second toggle undoes the first completely
	result, err = handler.Handle(ToggleLikeCommand{BlogID: blog.ID, UserID: 10})
	require.NoError(t, err)
	assert.False(t, result.IsLiked)
	assert.Empty(t, result.Likes)
}

func TestToggleLikePreservesOrder(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	blog := seedBlog(t, repo, "")
	handler := NewToggleLikeHandler(repo)

	for _, userID := range []uint{3, 1, 2} {
		_, err := handler.Handle(ToggleLikeCommand{BlogID: blog.ID, UserID: userID})
		require.NoError(t, err)
	}

	// Removing from the middle keeps the remaining insertion order
	result, err := handler.Handle(ToggleLikeCommand{BlogID: blog.ID, UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 2}, result.Likes)
}

func TestToggleLikeNoDuplicates(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	blog := seedBlog(t, repo, "")
	handler := NewToggleLikeHandler(repo)

	// like, unlike, like again
	for i := 0; i < 3; i++ {
		_, err := handler.Handle(ToggleLikeCommand{BlogID: blog.ID, UserID: 5})
		require.NoError(t, err)
	}

	stored, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{5}, []uint(stored.Likes))
}

func TestToggleLikeErrors(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	blog := seedBlog(t, repo, "")
	handler := NewToggleLikeHandler(repo)

	_, err := handler.Handle(ToggleLikeCommand{BlogID: 99, UserID: 1})
	assert.True(t, apperr.IsNotFound(err))

	_, err = handler.Handle(ToggleLikeCommand{BlogID: blog.ID})
	assert.True(t, apperr.IsValidation(err))
}
