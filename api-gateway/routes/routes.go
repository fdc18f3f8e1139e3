package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tair/blog-platform/api-gateway/config"
	"github.com/tair/blog-platform/api-gateway/middleware"
	"github.com/tair/blog-platform/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
	RequireAuth bool // Requires authentication at the gateway
}

// Routes holds all route definitions. Blog and profile prefixes stay
// public at the gateway because reads are open to everyone; the
// services reject unauthenticated writes themselves. Optional auth
// still forwards identity so favourite flags resolve.
var Routes = []RouteDefinition{
	{
		Prefix:      "/auth",
		ServiceName: "user",
		Description: "Authentication endpoints (register, login, refresh)",
		RequireAuth: false,
	},
	{
		Prefix:      "/profile",
		ServiceName: "user",
		Description: "Public profiles and profile updates",
		RequireAuth: false,
	},
	{
		Prefix:      "/blogs",
		ServiceName: "blog",
		Description: "Blog posts, likes, comments and favourites",
		RequireAuth: false,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	// Create reverse proxy
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "api-gateway",
		})
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		services := checkServices(ctx, cfg)

		statusCode := fiber.StatusOK
		status := "healthy"
		for _, healthy := range services {
			if !healthy {
				statusCode = fiber.StatusServiceUnavailable
				status = "unhealthy"
			}
		}

		return c.Status(statusCode).JSON(fiber.Map{
			"status":   status,
			"services": services,
		})
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Blog Platform API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// checkServices probes each backend's health endpoint
func checkServices(ctx context.Context, cfg *config.GatewayConfig) map[string]bool {
	client := &http.Client{Timeout: 2 * time.Second}
	services := make(map[string]bool, len(cfg.Services))

	for name, svc := range cfg.Services {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.BaseURL+svc.HealthCheck, nil)
		if err != nil {
			services[name] = false
			continue
		}

		resp, err := client.Do(req)
		if err != nil {
			services[name] = false
			continue
		}
		resp.Body.Close()
		services[name] = resp.StatusCode == http.StatusOK
	}

	return services
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	// Create handler function
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	// Apply middleware based on route requirements
	var middlewares []fiber.Handler

	if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	} else {
		middlewares = append(middlewares, middleware.OptionalAuthMiddleware())
	}

	// Create a route group for this service
	group := app.Group(route.Prefix, middlewares...)

	// Handle all HTTP methods with wildcard path
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	app.All(route.Prefix, append(middlewares, handler)...)
}
