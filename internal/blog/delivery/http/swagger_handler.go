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

// ListBlogs godoc
// @Summary List blogs
// @Description Get a paginated page of blog excerpts, oldest first
// @Tags Blogs
// @Produce json
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} object{total=int,page=int,limit=int,blogs=array}
// @Failure 500 {object} object{error=string}
// @Router /blogs [get]
func (h *BlogHandler) ListBlogsDoc() {}

// GetBlog godoc
// @Summary Get a blog
// @Description Get full blog content; includes isFavourite for authenticated viewers
// @Tags Blogs
// @Produce json
// @Param postId path int true "Blog ID"
// @Success 200 {object} object{id=int,title=string,content=string,likes=array,comments=array,isFavourite=bool}
// @Failure 404 {object} object{error=string}
// @Router /blogs/{postId} [get]
func (h *BlogHandler) GetBlogDoc() {}

// CreateBlog godoc
// @Summary Create a blog
// @Description Create a new blog post with a snapshot of the author
// @Tags Blogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{title=string,content=string,tags=string,thumbnail=string} true "Blog data"
// @Success 201 {object} object{status=string,message=string,blog=object}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /blogs [post]
func (h *BlogHandler) CreateBlogDoc() {}

// UpdateBlog godoc
// @Summary Update a blog
// @Description Partially update title, content, tags or thumbnail
// @Tags Blogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param postId path int true "Blog ID"
// @Param request body object{title=string,content=string,tags=string,thumbnail=string} true "Fields to update"
// @Success 200 {object} object{id=int,title=string,content=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /blogs/{postId} [put]
func (h *BlogHandler) UpdateBlogDoc() {}

// DeleteBlog godoc
// @Summary Delete a blog
// @Description Delete a blog and schedule thumbnail cleanup
// @Tags Blogs
// @Security BearerAuth
// @Produce json
// @Param postId path int true "Blog ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /blogs/{postId} [delete]
func (h *BlogHandler) DeleteBlogDoc() {}

// PopularBlogs godoc
// @Summary Popular blogs
// @Description Get blogs ranked by like count, most liked first
// @Tags Blogs
// @Produce json
// @Param limit query int false "Maximum results (default 5)"
// @Success 200 {object} object{total=int,blogs=array}
// @Failure 500 {object} object{error=string}
// @Router /blogs/popular [get]
func (h *BlogHandler) PopularBlogsDoc() {}

// SearchBlogs godoc
// @Summary Search blogs
// @Description Case-insensitive title search
// @Tags Blogs
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} object{length=int,query=string,data=array}
// @Failure 404 {object} object{message=string,length=int}
// @Router /blogs/search [get]
func (h *BlogHandler) SearchBlogsDoc() {}

// ToggleLike godoc
// @Summary Toggle like
// @Description Like or unlike a blog for the authenticated user
// @Tags Blogs
// @Security BearerAuth
// @Produce json
// @Param postId path int true "Blog ID"
// @Success 200 {object} object{isLiked=bool,likes=array}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /blogs/{postId}/like [post]
func (h *BlogHandler) ToggleLikeDoc() {}

// ToggleFavorite godoc
// @Summary Toggle favourite
// @Description Add or remove a blog from the caller's favourites
// @Tags Blogs
// @Security BearerAuth
// @Produce json
// @Param postId path int true "Blog ID"
// @Success 200 {object} object{id=int,title=string,isFavourite=bool}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /blogs/{postId}/favourite [post]
func (h *BlogHandler) ToggleFavoriteDoc() {}

// ListFavorites godoc
// @Summary List favourites
// @Description Get the caller's favourited blogs in the order they were added
// @Tags Blogs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{total=int,blogs=array}
// @Failure 401 {object} object{error=string}
// @Router /blogs/favourites [get]
func (h *BlogHandler) ListFavoritesDoc() {}

// CommentPost godoc
// @Summary Comment on a blog
// @Description Append a comment with a snapshot of its author
// @Tags Blogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param postId path int true "Blog ID"
// @Param request body object{content=string} true "Comment content"
// @Success 200 {object} object{id=int,comments=array}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /blogs/{postId}/comments [post]
func (h *BlogHandler) CommentPostDoc() {}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Remove a comment from a blog by id
// @Tags Blogs
// @Security BearerAuth
// @Produce json
// @Param postId path int true "Blog ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} object{id=int,comments=array}
// @Failure 404 {object} object{error=string}
// @Router /blogs/{postId}/comments/{commentId} [delete]
func (h *BlogHandler) DeleteCommentDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *BlogHandler) HealthCheckDoc() {}
