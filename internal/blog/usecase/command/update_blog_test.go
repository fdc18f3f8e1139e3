package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/internal/blog/repository"
	"github.com/tair/blog-platform/pkg/apperr"
)

func strPtr(s string) *string { return &s }

func seedBlog(t *testing.T, repo domain.BlogRepository, thumbnail string) *domain.Blog {
	t.Helper()
	blog, err := NewCreateBlogHandler(repo).Handle(CreateBlogCommand{
		Title:     "Original",
		Content:   "original content",
		TagsCSV:   "go,web",
		Thumbnail: thumbnail,
		Author:    testAuthor(),
	})
	require.NoError(t, err)
	return blog
}

func TestUpdateBlogPartial(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	images := &fakeImageDeleter{}
	blog := seedBlog(t, repo, "")

	updated, err := NewUpdateBlogHandler(repo, images).Handle(UpdateBlogCommand{
		ID:    blog.ID,
		Title: strPtr("Renamed"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "original content", updated.Content)
	assert.Equal(t, []string{"go", "web"}, []string(updated.Tags))
	assert.Empty(t, images.deleted)
}

func TestUpdateBlogReparsesTags(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	blog := seedBlog(t, repo, "")

	updated, err := NewUpdateBlogHandler(repo, &fakeImageDeleter{}).Handle(UpdateBlogCommand{
		ID:      blog.ID,
		TagsCSV: strPtr(" a, b ,c "),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, []string(updated.Tags))
}

func TestUpdateBlogReplacesThumbnail(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	images := &fakeImageDeleter{}
	blog := seedBlog(t, repo, "old-upload.png")

	updated, err := NewUpdateBlogHandler(repo, images).Handle(UpdateBlogCommand{
		ID:        blog.ID,
		Thumbnail: strPtr("new-upload.png"),
	})
	require.NoError(t, err)

	assert.Equal(t, "new-upload.png", updated.Thumbnail)
	assert.Equal(t, []string{"old-upload.png"}, images.deleted)
}

func TestUpdateBlogNeverDeletesPlaceholder(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	images := &fakeImageDeleter{}
	blog := seedBlog(t, repo, "")

	_, err := NewUpdateBlogHandler(repo, images).Handle(UpdateBlogCommand{
		ID:        blog.ID,
		Thumbnail: strPtr("new-upload.png"),
	})
	require.NoError(t, err)
	assert.Empty(t, images.deleted)
}

func TestUpdateBlogIgnoresEmptyThumbnail(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	images := &fakeImageDeleter{}
	blog := seedBlog(t, repo, "old-upload.png")

	updated, err := NewUpdateBlogHandler(repo, images).Handle(UpdateBlogCommand{
		ID:        blog.ID,
		Thumbnail: strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "old-upload.png", updated.Thumbnail)
	assert.Empty(t, images.deleted)
}

func TestUpdateBlogNotFound(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()

	_, err := NewUpdateBlogHandler(repo, &fakeImageDeleter{}).Handle(UpdateBlogCommand{
		ID:    99,
		Title: strPtr("nope"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteBlog(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	images := &fakeImageDeleter{}
	blog := seedBlog(t, repo, "cover.png")

	deleted, err := NewDeleteBlogHandler(repo, images).Handle(DeleteBlogCommand{ID: blog.ID})
	require.NoError(t, err)

	assert.Equal(t, blog.ID, deleted.ID)
	assert.Equal(t, []string{"cover.png"}, images.deleted)

	_, err = repo.FindByID(blog.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteBlogKeepsPlaceholder(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	images := &fakeImageDeleter{}
	blog := seedBlog(t, repo, "")

	_, err := NewDeleteBlogHandler(repo, images).Handle(DeleteBlogCommand{ID: blog.ID})
	require.NoError(t, err)
	assert.Empty(t, images.deleted)
}
