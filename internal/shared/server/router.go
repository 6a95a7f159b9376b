package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studyhub-backend/internal/shared/config"
	"studyhub-backend/internal/shared/metrics"
	"studyhub-backend/internal/shared/server/middleware"
	"studyhub-backend/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes to the API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	DocumentsHandler  RouteRegistrar
	QuestionsHandler  RouteRegistrar
	GoogleAuth        RouteRegistrar
	ServeLocalObjects bool
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
	)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return "MUTATE"
			}
			return "READ"
		},
		Rules: map[string]middleware.RateLimitRule{
			// Uploads and questions only; reads have no rule.
			"MUTATE": {Rate: 0.5, Burst: 10},
		},
	}))

	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	registerSessionRoutes(api)
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.DocumentsHandler != nil {
		deps.DocumentsHandler.RegisterRoutes(api)
	}
	if deps.QuestionsHandler != nil {
		deps.QuestionsHandler.RegisterRoutes(api)
	}

	// The local object store publishes its URLs under /files.
	if deps.ServeLocalObjects {
		r.Static("/files", deps.Config.LocalStoreDir)
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
