package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseTags("a, b ,c"))
	assert.Equal(t, []string{"solo"}, ParseTags("solo"))
	assert.Equal(t, []string{"x", "y"}, ParseTags("x,,y,"))
	assert.Empty(t, ParseTags(""))
	assert.Empty(t, ParseTags(" , , "))
}

func TestLikeIndex(t *testing.T) {
	b := Blog{Likes: []uint{3, 1, 2}}
	assert.Equal(t, 0, b.LikeIndex(3))
	assert.Equal(t, 2, b.LikeIndex(2))
	assert.Equal(t, -1, b.LikeIndex(9))
}

func TestCommentIndex(t *testing.T) {
	b := Blog{Comments: []Comment{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, 1, b.CommentIndex("b"))
	assert.Equal(t, -1, b.CommentIndex("z"))
}

func TestViewFor(t *testing.T) {
	blog := Blog{ID: 5, Title: "Post"}

	view := ViewFor(blog, []uint{2, 5, 9})
	assert.True(t, view.IsFavourite)
	assert.Equal(t, blog.Title, view.Title)

	view = ViewFor(blog, []uint{2, 9})
	assert.False(t, view.IsFavourite)

	// Anonymous viewer
	view = ViewFor(blog, nil)
	assert.False(t, view.IsFavourite)
}
