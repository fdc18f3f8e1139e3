package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/blog-platform/internal/blog/domain"
	"github.com/tair/blog-platform/internal/blog/usecase/command"
	"github.com/tair/blog-platform/internal/blog/usecase/query"
	userdomain "github.com/tair/blog-platform/internal/user/domain"
	"github.com/tair/blog-platform/kafka"
	"github.com/tair/blog-platform/pkg/apperr"
	"github.com/tair/blog-platform/pkg/cache"
	"github.com/tair/blog-platform/pkg/logger"
)

// popularCacheKey caches the default popular-blogs ranking
const popularCacheKey = "blogs:popular"

// CommandHandlers bundles all blog command handlers
type CommandHandlers struct {
	CreateHandler         *command.CreateBlogHandler
	UpdateHandler         *command.UpdateBlogHandler
	DeleteHandler         *command.DeleteBlogHandler
	ToggleLikeHandler     *command.ToggleLikeHandler
	CommentHandler        *command.CommentPostHandler
	DeleteCommentHandler  *command.DeleteCommentHandler
	ToggleFavoriteHandler *command.ToggleFavoriteHandler
}

// QueryHandlers bundles all blog query handlers
type QueryHandlers struct {
	ListHandler      *query.ListBlogsHandler
	GetHandler       *query.GetBlogHandler
	PopularHandler   *query.PopularBlogsHandler
	FavoritesHandler *query.ListFavoritesHandler
	SearchHandler    *query.SearchBlogsHandler
}

// BlogHandler handles HTTP requests for blogs
type BlogHandler struct {
	commands *CommandHandlers
	queries  *QueryHandlers

	repo  domain.BlogRepository
	users userdomain.UserRepository

	publisher    *kafka.Publisher // nil disables event publishing
	popularCache *cache.Cache     // nil disables caching

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	blogsTotal     prometheus.Gauge
}

// NewBlogHandler wires a handler with freshly constructed usecases
func NewBlogHandler(
	repo domain.BlogRepository,
	users userdomain.UserRepository,
	images command.ImageDeleter,
	publisher *kafka.Publisher,
	popularCache *cache.Cache,
) *BlogHandler {
	commands := &CommandHandlers{
		CreateHandler:         command.NewCreateBlogHandler(repo),
		UpdateHandler:         command.NewUpdateBlogHandler(repo, images),
		DeleteHandler:         command.NewDeleteBlogHandler(repo, images),
		ToggleLikeHandler:     command.NewToggleLikeHandler(repo),
		CommentHandler:        command.NewCommentPostHandler(repo),
		DeleteCommentHandler:  command.NewDeleteCommentHandler(repo),
		ToggleFavoriteHandler: command.NewToggleFavoriteHandler(repo, users),
	}
	queries := &QueryHandlers{
		ListHandler:      query.NewListBlogsHandler(repo),
		GetHandler:       query.NewGetBlogHandler(repo),
		PopularHandler:   query.NewPopularBlogsHandler(repo),
		FavoritesHandler: query.NewListFavoritesHandler(repo, users),
		SearchHandler:    query.NewSearchBlogsHandler(repo),
	}
	return NewBlogHandlerWithDI(commands, queries, repo, users, publisher, popularCache)
}

// NewBlogHandlerWithDI wires a handler from pre-built usecases
func NewBlogHandlerWithDI(
	commands *CommandHandlers,
	queries *QueryHandlers,
	repo domain.BlogRepository,
	users userdomain.UserRepository,
	publisher *kafka.Publisher,
	popularCache *cache.Cache,
) *BlogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_service_requests_total",
			Help: "Total number of requests to blog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_service_request_duration_seconds",
			Help:    "Duration of blog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	blogsTotal := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "blog_service_blogs_total",
			Help: "Number of blogs in the store",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(blogsTotal)

	return &BlogHandler{
		commands:       commands,
		queries:        queries,
		repo:           repo,
		users:          users,
		publisher:      publisher,
		popularCache:   popularCache,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		blogsTotal:     blogsTotal,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *BlogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// ListBlogs handles GET /blogs
func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	list, err := h.queries.ListHandler.Handle(query.ListBlogsQuery{Limit: limit, Page: page})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, list)
}

// GetBlog handles GET /blogs/{postId}. Authenticated viewers get the
// favourite projection; anonymous viewers get the plain blog.
func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "postId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	blog, err := h.queries.GetHandler.Handle(query.GetBlogQuery{ID: id})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	if viewerID, authed := callerID(r); authed {
		if viewer, err := h.users.FindByID(viewerID); err == nil {
			h.respondJSON(w, http.StatusOK, domain.ViewFor(*blog, viewer.Favourites))
			return
		}
	}

	h.respondJSON(w, http.StatusOK, blog)
}

// CreateBlog handles POST /blogs
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title     string `json:"title"`
		Content   string `json:"content"`
		Tags      string `json:"tags"`
		Thumbnail string `json:"thumbnail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	author, err := h.authorSnapshot(r)
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	blog, err := h.commands.CreateHandler.Handle(command.CreateBlogCommand{
		Title:     req.Title,
		Content:   req.Content,
		TagsCSV:   req.Tags,
		Thumbnail: req.Thumbnail,
		Author:    author,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishBlogCreated(r.Context(), kafka.BlogCreatedEvent{
			BlogID:   blog.ID,
			AuthorID: blog.Author.ID,
			Title:    blog.Title,
			Tags:     blog.Tags,
		}); err != nil {
			logger.Warn(r.Context()).Err(err).Uint("blog_id", blog.ID).Msg("Failed to publish blog.created")
		}
	}

	h.updateBlogsTotalMetric()
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Blog created successfully",
		"blog":    blog,
	})
}

// UpdateBlog handles PUT /blogs/{postId}
func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "postId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	var req struct {
		Title     *string `json:"title"`
		Content   *string `json:"content"`
		Tags      *string `json:"tags"`
		Thumbnail *string `json:"thumbnail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	blog, err := h.commands.UpdateHandler.Handle(command.UpdateBlogCommand{
		ID:        id,
		Title:     req.Title,
		Content:   req.Content,
		TagsCSV:   req.Tags,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, blog)
}

// DeleteBlog handles DELETE /blogs/{postId}
func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "postId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	blog, err := h.commands.DeleteHandler.Handle(command.DeleteBlogCommand{ID: id})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishBlogDeleted(r.Context(), kafka.BlogDeletedEvent{
			BlogID:   blog.ID,
			AuthorID: blog.Author.ID,
		}); err != nil {
			logger.Warn(r.Context()).Err(err).Uint("blog_id", blog.ID).Msg("Failed to publish blog.deleted")
		}
	}

	h.popularCache.Invalidate(r.Context(), popularCacheKey)
	h.updateBlogsTotalMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Blog deleted successfully"})
}

// PopularBlogs handles GET /blogs/popular
func (h *BlogHandler) PopularBlogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	// Only the default ranking is cached
	if limit == 0 {
		var cached query.PopularBlogs
		if h.popularCache.GetJSON(r.Context(), popularCacheKey, &cached) {
			h.respondJSON(w, http.StatusOK, &cached)
			return
		}
	}

	popular, err := h.queries.PopularHandler.Handle(query.PopularBlogsQuery{Limit: limit})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	if limit == 0 {
		h.popularCache.SetJSON(r.Context(), popularCacheKey, popular)
	}

	h.respondJSON(w, http.StatusOK, popular)
}

// SearchBlogs handles GET /blogs/search?q=
func (h *BlogHandler) SearchBlogs(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.SearchHandler.Handle(query.SearchBlogsQuery{Term: r.URL.Query().Get("q")})
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if result.Length == 0 {
		h.respondJSON(w, http.StatusNotFound, map[string]interface{}{
			"message": "No results found",
			"length":  0,
		})
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// ToggleLike handles POST /blogs/{postId}/like
func (h *BlogHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "postId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}
	userID, _ := callerID(r)

	result, err := h.commands.ToggleLikeHandler.Handle(command.ToggleLikeCommand{
		BlogID: id,
		UserID: userID,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	// The ranking depends on like counts
	h.popularCache.Invalidate(r.Context(), popularCacheKey)

	h.respondJSON(w, http.StatusOK, result)
}

// ToggleFavorite handles POST /blogs/{postId}/favourite
func (h *BlogHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "postId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}
	userID, _ := callerID(r)

	view, err := h.commands.ToggleFavoriteHandler.Handle(command.ToggleFavoriteCommand{
		BlogID: id,
		UserID: userID,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// ListFavorites handles GET /blogs/favourites
func (h *BlogHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	favorites, err := h.queries.FavoritesHandler.Handle(query.ListFavoritesQuery{UserID: userID})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, favorites)
}

// CommentPost handles POST /blogs/{postId}/comments
func (h *BlogHandler) CommentPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "postId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	author, err := h.authorSnapshot(r)
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	blog, err := h.commands.CommentHandler.Handle(command.CommentPostCommand{
		BlogID:  id,
		Content: req.Content,
		Author:  author,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, blog)
}

// DeleteComment handles DELETE /blogs/{postId}/comments/{commentId}
func (h *BlogHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "postId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}
	commentID := mux.Vars(r)["commentId"]

	blog, err := h.commands.DeleteCommentHandler.Handle(command.DeleteCommentCommand{
		BlogID:    id,
		CommentID: commentID,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, blog)
}

// HealthCheck handles GET /health
func (h *BlogHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// authorSnapshot captures the caller's identity as a denormalized embed
func (h *BlogHandler) authorSnapshot(r *http.Request) (domain.AuthorRef, error) {
	userID, ok := callerID(r)
	if !ok {
		return domain.AuthorRef{}, apperr.Validation("authenticated caller required")
	}

	user, err := h.users.FindByID(userID)
	if err != nil {
		return domain.AuthorRef{}, err
	}

	return domain.AuthorRef{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Avatar:    user.Avatar,
	}, nil
}

// updateBlogsTotalMetric refreshes the blogs gauge
func (h *BlogHandler) updateBlogsTotalMetric() {
	if count, err := h.repo.Count(); err == nil {
		h.blogsTotal.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func (h *BlogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondAppError maps tagged service errors to status codes
func (h *BlogHandler) respondAppError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		respondError(w, http.StatusBadRequest, err.Error())
	case apperr.KindNotFound:
		respondError(w, http.StatusNotFound, err.Error())
	case apperr.KindConflict:
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func pathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// RegisterRoutes registers all blog routes
func (h *BlogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/blogs", h.metricsMiddleware("/blogs", h.ListBlogs)).Methods("GET")
	router.HandleFunc("/blogs/popular", h.metricsMiddleware("/blogs/popular", h.PopularBlogs)).Methods("GET")
	router.HandleFunc("/blogs/search", h.metricsMiddleware("/blogs/search", h.SearchBlogs)).Methods("GET")

	// Authenticated routes (registered before the catch-all {postId})
	router.HandleFunc("/blogs/favourites", h.metricsMiddleware("/blogs/favourites", AuthMiddleware(h.ListFavorites))).Methods("GET")
	router.HandleFunc("/blogs", h.metricsMiddleware("/blogs", AuthMiddleware(h.CreateBlog))).Methods("POST")
	router.HandleFunc("/blogs/{postId}", h.metricsMiddleware("/blogs/{postId}", AuthMiddleware(h.UpdateBlog))).Methods("PUT")
	router.HandleFunc("/blogs/{postId}", h.metricsMiddleware("/blogs/{postId}", AuthMiddleware(h.DeleteBlog))).Methods("DELETE")
	router.HandleFunc("/blogs/{postId}/like", h.metricsMiddleware("/blogs/{postId}/like", AuthMiddleware(h.ToggleLike))).Methods("POST")
	router.HandleFunc("/blogs/{postId}/favourite", h.metricsMiddleware("/blogs/{postId}/favourite", AuthMiddleware(h.ToggleFavorite))).Methods("POST")
	router.HandleFunc("/blogs/{postId}/comments", h.metricsMiddleware("/blogs/{postId}/comments", AuthMiddleware(h.CommentPost))).Methods("POST")
	router.HandleFunc("/blogs/{postId}/comments/{commentId}", h.metricsMiddleware("/blogs/{postId}/comments/{commentId}", AuthMiddleware(h.DeleteComment))).Methods("DELETE")

	// Single blog read is public but favourite-aware when authenticated
	router.HandleFunc("/blogs/{postId}", h.metricsMiddleware("/blogs/{postId}", OptionalAuthMiddleware(h.GetBlog))).Methods("GET")
}

// RegisterHealthCheck registers the health check endpoint
func (h *BlogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}
