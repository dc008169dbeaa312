package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvforge/internal/shared/config"
	"cvforge/internal/shared/metrics"
	"cvforge/internal/shared/server/middleware"
	"cvforge/internal/shared/server/respond"
)

// RouteRegistrar attaches a handler's routes to a router group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, registrars ...RouteRegistrar) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	for _, reg := range registrars {
		reg.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
