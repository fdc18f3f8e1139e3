package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/blog-platform/internal/user/domain"
	"github.com/tair/blog-platform/internal/user/usecase/command"
	"github.com/tair/blog-platform/internal/user/usecase/query"
	"github.com/tair/blog-platform/pkg/apperr"
)

// CommandHandlers bundles all user command handlers
type CommandHandlers struct {
	RegisterHandler      *command.RegisterUserHandler
	LoginHandler         *command.LoginUserHandler
	RefreshTokenHandler  *command.RefreshTokenHandler
	UpdateProfileHandler *command.UpdateProfileHandler
}

// QueryHandlers bundles all user query handlers
type QueryHandlers struct {
	GetProfileHandler *query.GetProfileHandler
}

// UserHandler handles HTTP requests for users
type UserHandler struct {
	commands *CommandHandlers
	queries  *QueryHandlers

	repo domain.UserRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	usersTotal     prometheus.Gauge
}

// NewUserHandler wires a handler with freshly constructed usecases
func NewUserHandler(repo domain.UserRepository, profiles *query.GetProfileHandler) *UserHandler {
	commands := &CommandHandlers{
		RegisterHandler:      command.NewRegisterUserHandler(repo),
		LoginHandler:         command.NewLoginUserHandler(repo),
		RefreshTokenHandler:  command.NewRefreshTokenHandler(repo),
		UpdateProfileHandler: command.NewUpdateProfileHandler(repo),
	}
	queries := &QueryHandlers{
		GetProfileHandler: profiles,
	}
	return NewUserHandlerWithDI(commands, queries, repo)
}

// NewUserHandlerWithDI wires a handler from pre-built usecases
func NewUserHandlerWithDI(commands *CommandHandlers, queries *QueryHandlers, repo domain.UserRepository) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_service_requests_total",
			Help: "Total number of requests to user service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_service_request_duration_seconds",
			Help:    "Duration of user service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	usersTotal := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "user_service_users_total",
			Help: "Number of registered users",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(usersTotal)

	return &UserHandler{
		commands:       commands,
		queries:        queries,
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		usersTotal:     usersTotal,
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
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Avatar    string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.commands.RegisterHandler.Handle(command.RegisterUserCommand{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    req.Avatar,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	h.updateUsersTotalMetric()
	h.respondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.commands.LoginHandler.Handle(command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Credential failures all look the same to the caller
		if apperr.IsNotFound(err) || apperr.IsValidation(err) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// RefreshToken handles POST /auth/refresh-token
func (h *UserHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.commands.RefreshTokenHandler.Handle(command.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		if apperr.IsValidation(err) || apperr.IsNotFound(err) {
			respondError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
			return
		}
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, pair)
}

// GetProfile handles GET /profile/{userId}
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["userId"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	profile, err := h.queries.GetProfileHandler.Handle(query.GetProfileQuery{UserID: uint(id)})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile for the authenticated user
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Bio       *string `json:"bio"`
		Avatar    *string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.commands.UpdateProfileHandler.Handle(command.UpdateProfileCommand{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Avatar:    req.Avatar,
	})
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// HealthCheck handles GET /health
func (h *UserHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
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

// updateUsersTotalMetric refreshes the users gauge
func (h *UserHandler) updateUsersTotalMetric() {
	if count, err := h.repo.Count(); err == nil {
		h.usersTotal.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondAppError maps tagged service errors to status codes
func (h *UserHandler) respondAppError(w http.ResponseWriter, err error) {
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

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// Auth routes (public)
	router.HandleFunc("/auth/register", h.metricsMiddleware("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/auth/refresh-token", h.metricsMiddleware("/auth/refresh-token", h.RefreshToken)).Methods("POST")

	// Profile routes
	router.HandleFunc("/profile/{userId}", h.metricsMiddleware("/profile/{userId}", h.GetProfile)).Methods("GET")
	router.HandleFunc("/profile", h.metricsMiddleware("/profile", AuthMiddleware(h.UpdateProfile))).Methods("PUT")
}

// RegisterHealthCheck registers the health check endpoint
func (h *UserHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}
