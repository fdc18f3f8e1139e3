//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	blogdomain "github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/internal/user/delivery/http"
	"github.com/tair/blog-platform/internal/user/domain"
	"github.com/tair/blog-platform/internal/user/repository"
	"github.com/tair/blog-platform/internal/user/usecase/command"
	"github.com/tair/blog-platform/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// Command Handlers Providers
func ProvideRegisterUserHandler(repo domain.UserRepository) *command.RegisterUserHandler {
	return command.NewRegisterUserHandler(repo)
}

func ProvideLoginUserHandler(repo domain.UserRepository) *command.LoginUserHandler {
	return command.NewLoginUserHandler(repo)
}

func ProvideRefreshTokenHandler(repo domain.UserRepository) *command.RefreshTokenHandler {
	return command.NewRefreshTokenHandler(repo)
}

func ProvideUpdateProfileHandler(repo domain.UserRepository) *command.UpdateProfileHandler {
	return command.NewUpdateProfileHandler(repo)
}

// Query Handlers Providers
func ProvideGetProfileHandler(repo domain.UserRepository, blogs blogdomain.BlogRepository) *query.GetProfileHandler {
	return query.NewGetProfileHandler(repo, blogs)
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	refreshTokenHandler *command.RefreshTokenHandler,
	updateProfileHandler *command.UpdateProfileHandler,
) *http.CommandHandlers {
	return &http.CommandHandlers{
		RegisterHandler:      registerHandler,
		LoginHandler:         loginHandler,
		RefreshTokenHandler:  refreshTokenHandler,
		UpdateProfileHandler: updateProfileHandler,
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(getProfileHandler *query.GetProfileHandler) *http.QueryHandlers {
	return &http.QueryHandlers{
		GetProfileHandler: getProfileHandler,
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideRegisterUserHandler,
	ProvideLoginUserHandler,
	ProvideRefreshTokenHandler,
	ProvideUpdateProfileHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetProfileHandler,
	ProvideQueryHandlers,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, blogs blogdomain.BlogRepository) (*http.UserHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewUserHandlerWithDI,
	)
	return nil, nil
}
