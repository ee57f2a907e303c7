package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/ai-stylist/internal/domain/auth"
	"github.com/yanqian/ai-stylist/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	logger = logger.With("component", "http.router")

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	api.Use(
		bodyLimitMiddleware(cfg.HTTP.MaxBodyBytes),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
	)
	if authSvc != nil && authSvc.Enabled() {
		api.Use(authMiddleware(authSvc))
	}
	{
		api.POST("/flows/body-analysis", handler.AnalyzeBody)
		api.POST("/flows/trending-clothes", handler.IdentifyTrends)
		api.POST("/flows/clothing-pairings", handler.SuggestPairings)
		api.POST("/flows/wardrobe-pairings", handler.PairWardrobe)
		api.GET("/trends", handler.TopTrends)
		api.GET("/catalog", handler.Catalog)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		args := []any{"method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds()}
		if id := c.Writer.Header().Get(invocationHeader); id != "" {
			args = append(args, "invocation_id", id)
		}
		if subject, ok := subjectFrom(c); ok {
			args = append(args, "subject", subject)
		}
		logger.Info("http request", args...)
	}
}
