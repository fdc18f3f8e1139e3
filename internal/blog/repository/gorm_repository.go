package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/pkg/apperr"
)

// GormBlogRepository implements BlogRepository using GORM
type GormBlogRepository struct {
	db *gorm.DB
}

// NewGormBlogRepository creates a new GORM blog repository
func NewGormBlogRepository(db *gorm.DB) *GormBlogRepository {
	return &GormBlogRepository{db: db}
}

// Create inserts a new blog
func (r *GormBlogRepository) Create(blog *domain.Blog) error {
	if err := r.db.Create(blog).Error; err != nil {
		return apperr.Internal(err, "failed to create blog")
	}
	return nil
}

// FindByID retrieves a blog by ID
func (r *GormBlogRepository) FindByID(id uint) (*domain.Blog, error) {
	var blog domain.Blog
	if err := r.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("blog not found")
		}
		return nil, apperr.Internal(err, "failed to find blog")
	}
	return &blog, nil
}

// FindAll retrieves blogs in creation order with pagination
func (r *GormBlogRepository) FindAll(limit, offset int) ([]domain.Blog, error) {
	var blogs []domain.Blog
	query := r.db.Order("id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&blogs).Error; err != nil {
		return nil, apperr.Internal(err, "failed to find blogs")
	}
	return blogs, nil
}

// FindByIDs retrieves the blogs matching the given ids. Missing ids are
// simply absent from the result; callers decide how to treat them.
func (r *GormBlogRepository) FindByIDs(ids []uint) ([]domain.Blog, error) {
	if len(ids) == 0 {
		return []domain.Blog{}, nil
	}

	var blogs []domain.Blog
	if err := r.db.Where("id IN ?", ids).Find(&blogs).Error; err != nil {
		return nil, apperr.Internal(err, "failed to find blogs by ids")
	}
	return blogs, nil
}

// FindByAuthor retrieves all blogs written by the given author
func (r *GormBlogRepository) FindByAuthor(authorID uint) ([]domain.Blog, error) {
	var blogs []domain.Blog
	if err := r.db.Where("author_id = ?", authorID).Order("id ASC").Find(&blogs).Error; err != nil {
		return nil, apperr.Internal(err, "failed to find blogs by author")
	}
	return blogs, nil
}

// Count returns the total number of blogs
func (r *GormBlogRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Blog{}).Count(&count).Error; err != nil {
		return 0, apperr.Internal(err, "failed to count blogs")
	}
	return count, nil
}

// Update saves a blog's full state
func (r *GormBlogRepository) Update(blog *domain.Blog) error {
	if err := r.db.Save(blog).Error; err != nil {
		return apperr.Internal(err, "failed to update blog")
	}
	return nil
}

// Delete removes a blog
func (r *GormBlogRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Blog{}, id)
	if result.Error != nil {
		return apperr.Internal(result.Error, "failed to delete blog")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("blog not found")
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormBlogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Blog{})
}
