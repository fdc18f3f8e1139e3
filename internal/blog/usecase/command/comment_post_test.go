package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/blog-platform/internal/blog/repository"
	"github.com/tair/blog-platform/pkg/apperr"
)

func TestCommentPost(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	blog := seedBlog(t, repo, "")
	handler := NewCommentPostHandler(repo)

	updated, err := handler.Handle(CommentPostCommand{
		BlogID:  blog.ID,
		Content: "great read",
		Author:  testAuthor(),
	})
	require.NoError(t, err)

	require.Len(t, updated.Comments, 1)
	assert.NotEmpty(t, updated.Comments[0].ID)
	assert.Equal(t, "great read", updated.Comments[0].Content)
	assert.Equal(t, uint(7), updated.Comments[0].Author.ID)
}

func TestCommentPostAppendsInOrder(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	blog := seedBlog(t, repo, "")
	handler := NewCommentPostHandler(repo)

	for _, content := range []string{"first", "second", "third"} {
		_, err := handler.Handle(CommentPostCommand{
			BlogID:  blog.ID,
			Content: content,
			Author:  testAuthor(),
		})
		require.NoError(t, err)
	}

	stored, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	require.Len(t, stored.Comments, 3)
	assert.Equal(t, "first", stored.Comments[0].Content)
	assert.Equal(t, "third", stored.Comments[2].Content)

	// Store-assigned ids are unique
	assert.NotEqual(t, stored.Comments[0].ID, stored.Comments[1].ID)
}

func TestCommentPostValidation(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	blog := seedBlog(t, repo, "")
	handler := NewCommentPostHandler(repo)

	_, err := handler.Handle(CommentPostCommand{BlogID: blog.ID, Author: testAuthor()})
	assert.True(t, apperr.IsValidation(err))

	_, err = handler.Handle(CommentPostCommand{BlogID: blog.ID, Content: "hi"})
	assert.True(t, apperr.IsValidation(err))

	_, err = handler.Handle(CommentPostCommand{BlogID: 99, Content: "hi", Author: testAuthor()})
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteComment(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	blog := seedBlog(t, repo, "")
	commentHandler := NewCommentPostHandler(repo)

	for _, content := range []string{"keep-a", "remove-me", "keep-b"} {
		_, err := commentHandler.Handle(CommentPostCommand{
			BlogID:  blog.ID,
			Content: content,
			Author:  testAuthor(),
		})
		require.NoError(t, err)
	}

	stored, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	target := stored.Comments[1].ID

	updated, err := NewDeleteCommentHandler(repo).Handle(DeleteCommentCommand{
		BlogID:    blog.ID,
		CommentID: target,
	})
	require.NoError(t, err)

	require.Len(t, updated.Comments, 2)
	assert.Equal(t, "keep-a", updated.Comments[0].Content)
	assert.Equal(t, "keep-b", updated.Comments[1].Content)
}

func TestDeleteCommentNotFound(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	blog := seedBlog(t, repo, "")

	handler := NewDeleteCommentHandler(repo)

	_, err := handler.Handle(DeleteCommentCommand{BlogID: blog.ID, CommentID: "missing"})
	assert.True(t, apperr.IsNotFound(err))

	_, err = handler.Handle(DeleteCommentCommand{BlogID: 99, CommentID: "any"})
	assert.True(t, apperr.IsNotFound(err))
}
