package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogrepo "github.com/tair/blog-platform/internal/blog/repository"
	userdomain "github.com/tair/blog-platform/internal/user/domain"
	userrepo "github.com/tair/blog-platform/internal/user/repository"
	"github.com/tair/blog-platform/pkg/apperr"
)

func seedUser(t *testing.T, repo userdomain.UserRepository) *userdomain.User {
	t.Helper()
	user := &userdomain.User{
		Email:      "reader@example.com",
		FirstName:  "Rita",
		LastName:   "Reader",
		Password:   "hashed",
		Favourites: []uint{},
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	blogs := blogrepo.NewMemoryBlogRepository()
	users := userrepo.NewMemoryUserRepository()
	blog := seedBlog(t, blogs, "")
	user := seedUser(t, users)

	handler := NewToggleFavoriteHandler(blogs, users)

	view, err := handler.Handle(ToggleFavoriteCommand{BlogID: blog.ID, UserID: user.ID})
	require.NoError(t, err)
	assert.True(t, view.IsFavourite)
	assert.Equal(t, blog.ID, view.ID)

	stored, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{blog.ID}, []uint(stored.Favourites))

	// Toggle back off
	view, err = handler.Handle(ToggleFavoriteCommand{BlogID: blog.ID, UserID: user.ID})
	require.NoError(t, err)
	assert.False(t, view.IsFavourite)

	stored, err = users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Favourites)
}

func TestToggleFavoriteDoesNotTouchBlog(t *testing.T) {
	blogs := blogrepo.NewMemoryBlogRepository()
	users := userrepo.NewMemoryUserRepository()
	blog := seedBlog(t, blogs, "")
	user := seedUser(t, users)

	_, err := NewToggleFavoriteHandler(blogs, users).Handle(ToggleFavoriteCommand{
		BlogID: blog.ID,
		UserID: user.ID,
	})
	require.NoError(t, err)

	stored, err := blogs.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, blog.UpdatedAt.Unix(), stored.UpdatedAt.Unix())
	assert.Empty(t, stored.Likes)
}

func TestToggleFavoriteErrors(t *testing.T) {
	blogs := blogrepo.NewMemoryBlogRepository()
	users := userrepo.NewMemoryUserRepository()
	blog := seedBlog(t, blogs, "")
	user := seedUser(t, users)

	handler := NewToggleFavoriteHandler(blogs, users)

	_, err := handler.Handle(ToggleFavoriteCommand{BlogID: 99, UserID: user.ID})
	assert.True(t, apperr.IsNotFound(err))

	_, err = handler.Handle(ToggleFavoriteCommand{BlogID: blog.ID, UserID: 99})
	assert.True(t, apperr.IsNotFound(err))

	_, err = handler.Handle(ToggleFavoriteCommand{BlogID: blog.ID})
	assert.True(t, apperr.IsValidation(err))
}
