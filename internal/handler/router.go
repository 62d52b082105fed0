package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	internalmiddleware "github.com/noah-isme/meeting-planner-api/internal/middleware"
	"github.com/noah-isme/meeting-planner-api/internal/service"
	"github.com/noah-isme/meeting-planner-api/pkg/config"
	"github.com/noah-isme/meeting-planner-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/meeting-planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/meeting-planner-api/pkg/middleware/requestid"
)

// RouterConfig carries the settings the HTTP layer needs.
type RouterConfig struct {
	APIPrefix      string
	AllowedOrigins []string
	RateLimit      config.RateLimitConfig
	Logger         *zap.Logger
	Metrics        *service.MetricsService
}

// Handlers groups the route handlers.
type Handlers struct {
	Drafts   *DraftHandler
	Timeline *TimelineHandler
	Planner  *PlannerHandler
	Metrics  *MetricsHandler
}

// NewRouter wires middleware and routes onto a new gin engine.
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	logr := cfg.Logger
	if logr == nil {
		logr = zap.NewNop()
	}
	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = "/api/v1"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(cfg.Metrics, "/metrics"))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)
	api.Use(internalmiddleware.WithResponseMeta())
	api.Use(internalmiddleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst, logr))

	api.GET("/metrics/summary", h.Metrics.Summary)

	drafts := api.Group("/drafts")
	drafts.POST("", h.Drafts.Create)
	drafts.GET("", h.Drafts.List)
	drafts.GET("/:id", h.Drafts.Get)
	drafts.DELETE("/:id", h.Drafts.Delete)
	drafts.POST("/:id/users", h.Drafts.AddUser)
	drafts.DELETE("/:id/users/:userId", h.Drafts.RemoveUser)
	drafts.POST("/:id/users/:userId/busy", h.Drafts.AddBusySlot)
	drafts.PUT("/:id/users/:userId/busy/:index", h.Drafts.UpdateBusySlot)
	drafts.DELETE("/:id/users/:userId/busy/:index", h.Drafts.RemoveBusySlot)
	drafts.POST("/:id/submit", h.Drafts.Submit)

	api.GET("/users", h.Planner.Users)
	api.GET("/suggestions", h.Planner.Suggestions)
	api.POST("/bookings", h.Planner.Book)
	api.GET("/meetings", h.Planner.Meetings)

	calendar := api.Group("/calendar/:userId")
	calendar.GET("", h.Timeline.Calendar)
	calendar.GET("/timeline", h.Timeline.Timeline)
	calendar.GET("/export", h.Timeline.Export)

	return r
}
