//go:build wireinject
// +build wireinject

package blog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/blog-platform/internal/blog/delivery/http"
	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/internal/blog/repository"
	"github.com/tair/blog-platform/internal/blog/usecase/command"
	"github.com/tair/blog-platform/internal/blog/usecase/query"
	userdomain "github.com/tair/blog-platform/internal/user/domain"
	"github.com/tair/blog-platform/kafka"
	"github.com/tair/blog-platform/pkg/cache"
)

// ProvideBlogRepository provides the blog repository
func ProvideBlogRepository(db *gorm.DB) domain.BlogRepository {
	return repository.NewGormBlogRepository(db)
}

// Command Handlers Providers
func ProvideCreateBlogHandler(repo domain.BlogRepository) *command.CreateBlogHandler {
	return command.NewCreateBlogHandler(repo)
}

func ProvideUpdateBlogHandler(repo domain.BlogRepository, images command.ImageDeleter) *command.UpdateBlogHandler {
	return command.NewUpdateBlogHandler(repo, images)
}

func ProvideDeleteBlogHandler(repo domain.BlogRepository, images command.ImageDeleter) *command.DeleteBlogHandler {
	return command.NewDeleteBlogHandler(repo, images)
}

func ProvideToggleLikeHandler(repo domain.BlogRepository) *command.ToggleLikeHandler {
	return command.NewToggleLikeHandler(repo)
}

func ProvideCommentPostHandler(repo domain.BlogRepository) *command.CommentPostHandler {
	return command.NewCommentPostHandler(repo)
}

func ProvideDeleteCommentHandler(repo domain.BlogRepository) *command.DeleteCommentHandler {
	return command.NewDeleteCommentHandler(repo)
}

func ProvideToggleFavoriteHandler(repo domain.BlogRepository, users userdomain.UserRepository) *command.ToggleFavoriteHandler {
	return command.NewToggleFavoriteHandler(repo, users)
}

// Query Handlers Providers
func ProvideListBlogsHandler(repo domain.BlogRepository) *query.ListBlogsHandler {
	return query.NewListBlogsHandler(repo)
}

func ProvideGetBlogHandler(repo domain.BlogRepository) *query.GetBlogHandler {
	return query.NewGetBlogHandler(repo)
}

func ProvidePopularBlogsHandler(repo domain.BlogRepository) *query.PopularBlogsHandler {
	return query.NewPopularBlogsHandler(repo)
}

func ProvideListFavoritesHandler(repo domain.BlogRepository, users userdomain.UserRepository) *query.ListFavoritesHandler {
	return query.NewListFavoritesHandler(repo, users)
}

func ProvideSearchBlogsHandler(repo domain.BlogRepository) *query.SearchBlogsHandler {
	return query.NewSearchBlogsHandler(repo)
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	createHandler *command.CreateBlogHandler,
	updateHandler *command.UpdateBlogHandler,
	deleteHandler *command.DeleteBlogHandler,
	toggleLikeHandler *command.ToggleLikeHandler,
	commentHandler *command.CommentPostHandler,
	deleteCommentHandler *command.DeleteCommentHandler,
	toggleFavoriteHandler *command.ToggleFavoriteHandler,
) *http.CommandHandlers {
	return &http.CommandHandlers{
		CreateHandler:         createHandler,
		UpdateHandler:         updateHandler,
		DeleteHandler:         deleteHandler,
		ToggleLikeHandler:     toggleLikeHandler,
		CommentHandler:        commentHandler,
		DeleteCommentHandler:  deleteCommentHandler,
		ToggleFavoriteHandler: toggleFavoriteHandler,
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(
	listHandler *query.ListBlogsHandler,
	getHandler *query.GetBlogHandler,
	popularHandler *query.PopularBlogsHandler,
	favoritesHandler *query.ListFavoritesHandler,
	searchHandler *query.SearchBlogsHandler,
) *http.QueryHandlers {
	return &http.QueryHandlers{
		ListHandler:      listHandler,
		GetHandler:       getHandler,
		PopularHandler:   popularHandler,
		FavoritesHandler: favoritesHandler,
		SearchHandler:    searchHandler,
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideBlogRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateBlogHandler,
	ProvideUpdateBlogHandler,
	ProvideDeleteBlogHandler,
	ProvideToggleLikeHandler,
	ProvideCommentPostHandler,
	ProvideDeleteCommentHandler,
	ProvideToggleFavoriteHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListBlogsHandler,
	ProvideGetBlogHandler,
	ProvidePopularBlogsHandler,
	ProvideListFavoritesHandler,
	ProvideSearchBlogsHandler,
	ProvideQueryHandlers,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	users userdomain.UserRepository,
	images command.ImageDeleter,
	publisher *kafka.Publisher,
	popularCache *cache.Cache,
) (*http.BlogHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewBlogHandlerWithDI,
	)
	return nil, nil
}
