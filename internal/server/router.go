// Package server assembles the gin router and owns the HTTP lifecycle.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"volunteerhub/internal/config"
	"volunteerhub/internal/handlers"
	"volunteerhub/internal/middleware"
)

// Handlers bundles the route handlers the router mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Activities *handlers.ActivityHandler
	Posts      *handlers.PostHandler
	Health     *handlers.HealthHandler
}

// NewRouter wires middleware and routes. The API-key gate is installed
// globally so that every /api path sits behind it, including unknown ones
// that fall through to the NoRoute handler; the gate itself exempts the
// health and test-db checks and ignores paths outside /api.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		cors.New(corsConfig(cfg)),
		middleware.RateLimit(cfg.RateLimitMax, cfg.RateLimitWindow),
		middleware.APIKeyGate(cfg.APIKey),
	)

	api := router.Group("/api")

	api.GET("/health", h.Health.Health)
	api.GET("/test-db", h.Health.TestDB)

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	api.GET("/activities", h.Activities.List)
	api.POST("/activities", h.Activities.Create)
	api.POST("/activities/:id/join", h.Activities.Join)

	api.GET("/community-posts", h.Posts.List)
	api.POST("/community-posts", h.Posts.Create)

	router.NoRoute(notFound)

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization", "X-Requested-With", "X-API-Key", "X-Request-ID"}
	return corsCfg
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"message": "Endpoint not found",
		"availableEndpoints": []string{
			"GET /api/health",
			"GET /api/test-db",
			"POST /api/auth/register",
			"POST /api/auth/login",
			"GET /api/activities",
			"POST /api/activities",
			"POST /api/activities/:id/join",
			"GET /api/community-posts",
			"POST /api/community-posts",
		},
	})
}
