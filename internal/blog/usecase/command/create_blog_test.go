package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/internal/blog/repository"
	"github.com/tair/blog-platform/pkg/apperr"
)

// fakeImageDeleter records scheduled deletions
type fakeImageDeleter struct {
	deleted []string
}

func (f *fakeImageDeleter) ScheduleDelete(filename, category string) {
	f.deleted = append(f.deleted, filename)
}

func testAuthor() domain.AuthorRef {
	return domain.AuthorRef{ID: 7, FirstName: "Ada", LastName: "Lovelace", Avatar: "ada.png"}
}

func TestCreateBlog(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	handler := NewCreateBlogHandler(repo)

	blog, err := handler.Handle(CreateBlogCommand{
		Title:   "First Post",
		Content: "Hello world",
		TagsCSV: "go, backend ,testing",
		Author:  testAuthor(),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), blog.ID)
	assert.Equal(t, "First Post", blog.Title)
	assert.Equal(t, []string{"go", "backend", "testing"}, []string(blog.Tags))
	assert.Equal(t, domain.DefaultThumbnail, blog.Thumbnail)
	assert.Empty(t, blog.Likes)
	assert.Empty(t, blog.Comments)
	assert.Equal(t, uint(7), blog.Author.ID)

	stored, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, blog.Title, stored.Title)
}

func TestCreateBlogKeepsUploadedThumbnail(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	handler := NewCreateBlogHandler(repo)

	blog, err := handler.Handle(CreateBlogCommand{
		Title:     "With Image",
		Content:   "content",
		TagsCSV:   "go",
		Thumbnail: "upload-42.png",
		Author:    testAuthor(),
	})
	require.NoError(t, err)
	assert.Equal(t, "upload-42.png", blog.Thumbnail)
}

func TestCreateBlogValidation(t *testing.T) {
	repo := repository.NewMemoryBlogRepository()
	handler := NewCreateBlogHandler(repo)

	cases := []struct {
		name string
		cmd  CreateBlogCommand
	}{
		{"missing title", CreateBlogCommand{Content: "c", TagsCSV: "t", Author: testAuthor()}},
		{"missing content", CreateBlogCommand{Title: "t", TagsCSV: "t", Author: testAuthor()}},
		{"missing tags", CreateBlogCommand{Title: "t", Content: "c", Author: testAuthor()}},
		{"missing author", CreateBlogCommand{Title: "t", Content: "c", TagsCSV: "t"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(tc.cmd)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		})
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
