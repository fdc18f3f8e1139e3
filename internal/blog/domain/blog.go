package domain

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DefaultThumbnail is the placeholder image assigned to blogs created
// without an upload. It is never scheduled for deletion.
const DefaultThumbnail = "default-thumbnail.png"

// AuthorRef is a denormalized snapshot of the author captured at write
// time. It is intentionally not a live reference: later profile changes
// do not rewrite history.
type AuthorRef struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
}

// Comment is an embedded blog comment
type Comment struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Author  AuthorRef `json:"author"`
}

// Blog represents the blog aggregate (domain model)
type Blog struct {
	ID        uint                         `json:"id" gorm:"primaryKey"`
	Title     string                       `json:"title" gorm:"not null"`
	Content   string                       `json:"content" gorm:"not null"`
	Thumbnail string                       `json:"thumbnail" gorm:"not null"`
	Author    AuthorRef                    `json:"author" gorm:"embedded;embeddedPrefix:author_"`
	Tags      datatypes.JSONSlice[string]  `json:"tags"`
	Likes     datatypes.JSONSlice[uint]    `json:"likes"`
	Comments  datatypes.JSONSlice[Comment] `json:"comments"`
	CreatedAt time.Time                    `json:"createdAt"`
	UpdatedAt time.Time                    `json:"updatedAt"`
}

// TableName specifies the table name
func (Blog) TableName() string {
	return "blogs"
}

// LikeIndex returns the position of userID in the likes sequence, -1 when absent
func (b *Blog) LikeIndex(userID uint) int {
	for i, id := range b.Likes {
		if id == userID {
			return i
		}
	}
	return -1
}

// CommentIndex returns the position of the comment with the given id, -1 when absent
func (b *Blog) CommentIndex(commentID string) int {
	for i, c := range b.Comments {
		if c.ID == commentID {
			return i
		}
	}
	return -1
}

// ParseTags splits a comma-separated tag string and trims each element
func ParseTags(csv string) []string {
	parts := strings.Split(csv, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// BlogView is the presentation projection of a blog for a specific
// viewer. IsFavourite is request-scoped and never persisted.
type BlogView struct {
	Blog
	IsFavourite bool `json:"isFavourite"`
}

// IsFavoriteFor reports whether blogID appears in a viewer's favourites
func IsFavoriteFor(blogID uint, favourites []uint) bool {
	for _, id := range favourites {
		if id == blogID {
			return true
		}
	}
	return false
}

// ViewFor annotates a blog with the favourite flag for the given viewer
// favourites. Anonymous viewers pass nil and get a false flag.
func ViewFor(blog Blog, favourites []uint) BlogView {
	return BlogView{Blog: blog, IsFavourite: IsFavoriteFor(blog.ID, favourites)}
}

// BlogRepository defines the contract for blog data access
type BlogRepository interface {
	Create(blog *Blog) error
	FindByID(id uint) (*Blog, error)
	FindAll(limit, offset int) ([]Blog, error)
	FindByIDs(ids []uint) ([]Blog, error)
	FindByAuthor(authorID uint) ([]Blog, error)
	Count() (int64, error)
	Update(blog *Blog) error
	Delete(id uint) error
}
