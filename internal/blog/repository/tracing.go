package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/blog-platform/internal/blog/domain"
)

var tracer = otel.Tracer("blog-repository")

// GormBlogRepositoryWithTracing wraps GormBlogRepository with tracing
type GormBlogRepositoryWithTracing struct {
	*GormBlogRepository
}

// NewGormBlogRepositoryWithTracing creates a new repository with tracing
func NewGormBlogRepositoryWithTracing(db *gorm.DB) *GormBlogRepositoryWithTracing {
	return &GormBlogRepositoryWithTracing{
		GormBlogRepository: NewGormBlogRepository(db),
	}
}

// CreateWithContext creates a blog inside a span
func (r *GormBlogRepositoryWithTracing) CreateWithContext(ctx context.Context, blog *domain.Blog) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("blog.title", blog.Title),
			attribute.Int("blog.author_id", int(blog.Author.ID)),
		),
	)
	defer span.End()

	if err := r.GormBlogRepository.Create(blog); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("blog.id", int(blog.ID)))
	return nil
}

// FindByIDWithContext looks up a blog inside a span
func (r *GormBlogRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Blog, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("blog.id", int(id)),
		),
	)
	defer span.End()

	blog, err := r.GormBlogRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("blog.likes", len(blog.Likes)))
	return blog, nil
}

// FindAllWithContext lists blogs inside a span
func (r *GormBlogRepositoryWithTracing) FindAllWithContext(ctx context.Context, limit, offset int) ([]domain.Blog, error) {
	_, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	blogs, err := r.GormBlogRepository.FindAll(limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(blogs)))
	return blogs, nil
}

// UpdateWithContext saves a blog inside a span
func (r *GormBlogRepositoryWithTracing) UpdateWithContext(ctx context.Context, blog *domain.Blog) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("blog.id", int(blog.ID)),
		),
	)
	defer span.End()

	if err := r.GormBlogRepository.Update(blog); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// DeleteWithContext deletes a blog inside a span
func (r *GormBlogRepositoryWithTracing) DeleteWithContext(ctx context.Context, id uint) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("blog.id", int(id)),
		),
	)
	defer span.End()

	if err := r.GormBlogRepository.Delete(id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
