package main

// @title User Service API
// @version 1.0
// @description Microservice for accounts, authentication and public profiles with full observability stack (Prometheus, Jaeger, Grafana)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/blog-platform
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/blog-platform/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Profile
// @tag.description Public profile endpoints

// @tag.name Health
// @tag.description Health check endpoints
