package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Register godoc
// @Summary Register a new user
// @Description Create a new account and return the user with a token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string,firstName=string,lastName=string,avatar=string} true "Registration data"
// @Success 201 {object} object{user=object,token=object{accessToken=string,refreshToken=string}}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /auth/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary User login
// @Description Authenticate and get a token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{user=object,token=object{accessToken=string,refreshToken=string}}
// @Failure 401 {object} object{error=string}
// @Router /auth/login [post]
func (h *UserHandler) LoginDoc() {}

// RefreshToken godoc
// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{refreshToken=string} true "Refresh token"
// @Success 200 {object} object{accessToken=string,refreshToken=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/refresh-token [post]
func (h *UserHandler) RefreshTokenDoc() {}

// GetProfile godoc
// @Summary Get a public profile
// @Description Get a user's profile together with all blogs they authored
// @Tags Profile
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} object{id=int,email=string,firstName=string,lastName=string,bio=string,blogs=array}
// @Failure 404 {object} object{error=string}
// @Router /profile/{userId} [get]
func (h *UserHandler) GetProfileDoc() {}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Update the authenticated user's allow-listed profile fields
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{firstName=string,lastName=string,bio=string,avatar=string} true "Fields to update"
// @Success 200 {object} object{id=int,email=string,firstName=string,lastName=string,bio=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /profile [put]
func (h *UserHandler) UpdateProfileDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *UserHandler) HealthCheckDoc() {}
