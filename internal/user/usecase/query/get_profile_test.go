package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogdomain "github.com/tair/blog-platform/internal/blog/domain"
	blogrepo "github.com/tair/blog-platform/internal/blog/repository"
	"github.com/tair/blog-platform/internal/user/domain"
	userrepo "github.com/tair/blog-platform/internal/user/repository"
	"github.com/tair/blog-platform/pkg/apperr"
)

func seedProfileData(t *testing.T) (*userrepo.MemoryUserRepository, *blogrepo.MemoryBlogRepository, *domain.User) {
	t.Helper()
	users := userrepo.NewMemoryUserRepository()
	blogs := blogrepo.NewMemoryBlogRepository()

	author := &domain.User{
		Email:      "ada@example.com",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Password:   "hashed",
		Favourites: []uint{},
	}
	require.NoError(t, users.Create(author))

	other := &domain.User{
		Email:      "grace@example.com",
		FirstName:  "Grace",
		Password:   "hashed",
		Favourites: []uint{},
	}
	require.NoError(t, users.Create(other))

	// Two posts by the author, one by someone else
	for _, spec := range []struct {
		title    string
		authorID uint
	}{
		{"Notes on Engines", author.ID},
		{"Second Notes", author.ID},
		{"Compilers", other.ID},
	} {
		require.NoError(t, blogs.Create(&blogdomain.Blog{
			Title:     spec.title,
			Content:   "content",
			Thumbnail: blogdomain.DefaultThumbnail,
			Author:    blogdomain.AuthorRef{ID: spec.authorID},
		}))
	}

	return users, blogs, author
}

func TestGetProfileAggregatesAuthoredBlogs(t *testing.T) {
	users, blogs, author := seedProfileData(t)

	profile, err := NewGetProfileHandler(users, blogs).Handle(GetProfileQuery{UserID: author.ID})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", profile.Email)
	require.Len(t, profile.Blogs, 2)
	assert.Equal(t, "Notes on Engines", profile.Blogs[0].Title)
	assert.Equal(t, "Second Notes", profile.Blogs[1].Title)
}

func TestGetProfileWithoutBlogs(t *testing.T) {
	users, blogs, _ := seedProfileData(t)

	// User 2 authored exactly one post
	profile, err := NewGetProfileHandler(users, blogs).Handle(GetProfileQuery{UserID: 2})
	require.NoError(t, err)
	require.Len(t, profile.Blogs, 1)
	assert.Equal(t, "Compilers", profile.Blogs[0].Title)
}

func TestGetProfileErrors(t *testing.T) {
	users, blogs, _ := seedProfileData(t)
	handler := NewGetProfileHandler(users, blogs)

	_, err := handler.Handle(GetProfileQuery{UserID: 99})
	assert.True(t, apperr.IsNotFound(err))

	_, err = handler.Handle(GetProfileQuery{})
	assert.True(t, apperr.IsValidation(err))
}
