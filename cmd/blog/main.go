package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	httpDelivery "github.com/tair/blog-platform/internal/blog/delivery/http"
	blogrepo "github.com/tair/blog-platform/internal/blog/repository"
	userrepo "github.com/tair/blog-platform/internal/user/repository"
	"github.com/tair/blog-platform/kafka"
	"github.com/tair/blog-platform/pkg/cache"
	"github.com/tair/blog-platform/pkg/database"
	"github.com/tair/blog-platform/pkg/logger"
	"github.com/tair/blog-platform/pkg/storage"
	"github.com/tair/blog-platform/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "blog-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting blog service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "blogdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Initialize repositories. The blog service reads users to resolve
	// author snapshots and favourite lists.
	blogRepository := blogrepo.NewGormBlogRepositoryWithTracing(db)
	userRepository := userrepo.NewGormUserRepository(db)

	if err := blogRepository.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	if err := userRepository.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher for blog lifecycle events (optional)
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable, lifecycle events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Redis cache for the popular ranking (optional)
	var popularCache *cache.Cache
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})
		popularCache = cache.New(redisClient, 5*time.Minute)
		logger.Logger.Info().Str("redis_addr", redisAddr).Msg("Popular blogs cache enabled")
	}

	// Thumbnail storage
	images := storage.NewImageStore(getEnv("UPLOADS_DIR", "./uploads"))

	// Initialize HTTP handler
	blogHandler := httpDelivery.NewBlogHandler(blogRepository, userRepository, images, publisher, popularCache)

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8081")
	startHTTPServer(blogHandler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(blogHandler *httpDelivery.BlogHandler, db *sql.DB, port string) {
	// Setup router
	router := mux.NewRouter()
	blogHandler.RegisterRoutes(router)

	// Health check endpoint
	blogHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Msg("HTTP server starting")
	logger.Logger.Info().Msg("Blog endpoints: /blogs, /blogs/popular, /blogs/search, /blogs/favourites")
	logger.Logger.Info().Msg("Prometheus metrics: /metrics")

	go func() {
		if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
