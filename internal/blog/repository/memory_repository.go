package repository

import (
	"sync"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/pkg/apperr"
)

// MemoryBlogRepository is an in-memory BlogRepository used in tests and
// local development. Blogs are kept in insertion order.
type MemoryBlogRepository struct {
	mu     sync.RWMutex
	nextID uint
	blogs  []domain.Blog
}

// NewMemoryBlogRepository creates an empty in-memory repository
func NewMemoryBlogRepository() *MemoryBlogRepository {
	return &MemoryBlogRepository{nextID: 1}
}

// Create inserts a new blog and assigns its id
func (r *MemoryBlogRepository) Create(blog *domain.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog.ID = r.nextID
	r.nextID++
	r.blogs = append(r.blogs, cloneBlog(*blog))
	return nil
}

// FindByID retrieves a blog by ID
func (r *MemoryBlogRepository) FindByID(id uint) (*domain.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.blogs {
		if b.ID == id {
			c := cloneBlog(b)
			return &c, nil
		}
	}
	return nil, apperr.NotFound("blog not found")
}

// FindAll returns blogs in insertion order with pagination
func (r *MemoryBlogRepository) FindAll(limit, offset int) ([]domain.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.blogs) {
		return []domain.Blog{}, nil
	}

	end := len(r.blogs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]domain.Blog, 0, end-offset)
	for _, b := range r.blogs[offset:end] {
		out = append(out, cloneBlog(b))
	}
	return out, nil
}

// FindByIDs returns the blogs matching ids, skipping missing ones
func (r *MemoryBlogRepository) FindByIDs(ids []uint) ([]domain.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Blog{}
	for _, b := range r.blogs {
		for _, id := range ids {
			if b.ID == id {
				out = append(out, cloneBlog(b))
				break
			}
		}
	}
	return out, nil
}

// FindByAuthor returns all blogs whose author snapshot matches authorID
func (r *MemoryBlogRepository) FindByAuthor(authorID uint) ([]domain.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Blog{}
	for _, b := range r.blogs {
		if b.Author.ID == authorID {
			out = append(out, cloneBlog(b))
		}
	}
	return out, nil
}

// Count returns the number of stored blogs
func (r *MemoryBlogRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.blogs)), nil
}

// Update replaces a stored blog
func (r *MemoryBlogRepository) Update(blog *domain.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.blogs {
		if b.ID == blog.ID {
			r.blogs[i] = cloneBlog(*blog)
			return nil
		}
	}
	return apperr.NotFound("blog not found")
}

// Delete removes a blog
func (r *MemoryBlogRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.blogs {
		if b.ID == id {
			r.blogs = append(r.blogs[:i], r.blogs[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("blog not found")
}

func cloneBlog(b domain.Blog) domain.Blog {
	c := b
	c.Tags = append(c.Tags[:0:0], b.Tags...)
	c.Likes = append(c.Likes[:0:0], b.Likes...)
	c.Comments = append(c.Comments[:0:0], b.Comments...)
	return c
}
