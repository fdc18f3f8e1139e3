package main

// @title Blog Service API
// @version 1.0
// @description Microservice for blog posts, likes, comments and favourites with full observability stack (Prometheus, Jaeger, Grafana)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/blog-platform
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/blog-platform/blob/main/LICENSE

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Blogs
// @tag.description Blog post endpoints

// @tag.name Health
// @tag.description Health check endpoints
