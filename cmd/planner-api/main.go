package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/meeting-planner-api/api/swagger"
	"github.com/noah-isme/meeting-planner-api/internal/backend"
	"github.com/noah-isme/meeting-planner-api/internal/handler"
	"github.com/noah-isme/meeting-planner-api/internal/repository"
	"github.com/noah-isme/meeting-planner-api/internal/service"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	"github.com/noah-isme/meeting-planner-api/pkg/cache"
	"github.com/noah-isme/meeting-planner-api/pkg/config"
	"github.com/noah-isme/meeting-planner-api/pkg/jobs"
	"github.com/noah-isme/meeting-planner-api/pkg/logger"
)

// @title Meeting Planner API
// @version 1.0.0
// @description Availability timelines, schedule drafts and meeting booking in front of the scheduling backend.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	window, err := timeline.ParseWindow(cfg.Timeline.WorkStart, cfg.Timeline.WorkEnd, cfg.Timeline.GranularityMinutes)
	if err != nil {
		logr.Fatal("invalid work window", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()
	checks := map[string]handler.Pinger{}

	cacheRepo := repository.NewCacheRepository(nil, logr)
	cacheOn := false
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, calendar cache disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
			checks["redis"] = cacheRepo
			cacheOn = true
		}
	}
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cacheOn)

	client := backend.NewHTTPClient(cfg.Backend, metrics, logr)
	validate := validator.New()

	timelineSvc := service.NewTimelineService(client, cacheSvc, metrics, window, validate, logr)
	plannerSvc := service.NewPlannerService(client, cacheSvc, window, cfg.Suggest.MaxDuration, validate, logr)

	warmup := jobs.NewQueue("calendar-warmup", timelineSvc.WarmupHandler(), jobs.QueueConfig{
		Workers:    cfg.Warmup.Workers,
		MaxRetries: cfg.Warmup.Retries,
		RetryDelay: 500 * time.Millisecond,
		Logger:     logr,
	})
	warmup.Start(ctx)
	defer warmup.Stop()

	draftSvc := service.NewDraftService(repository.NewDraftRepository(), client, cacheSvc, warmup, validate, logr)

	r := handler.NewRouter(handler.RouterConfig{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit:      cfg.RateLimit,
		Logger:         logr,
		Metrics:        metrics,
	}, handler.Handlers{
		Drafts:   handler.NewDraftHandler(draftSvc),
		Timeline: handler.NewTimelineHandler(timelineSvc),
		Planner:  handler.NewPlannerHandler(plannerSvc),
		Metrics:  handler.NewMetricsHandler(metrics, checks),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("backend", cfg.Backend.BaseURL),
			zap.Bool("calendar_cache", cacheSvc.Enabled()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
