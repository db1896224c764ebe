package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/smart-timetable/dashboard-api/api/swagger"
	"github.com/smart-timetable/dashboard-api/internal/gateway"
	"github.com/smart-timetable/dashboard-api/internal/handler"
	"github.com/smart-timetable/dashboard-api/internal/localstore"
	"github.com/smart-timetable/dashboard-api/internal/middleware"
	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/service"
	"github.com/smart-timetable/dashboard-api/internal/sync"
	"github.com/smart-timetable/dashboard-api/pkg/cache"
	"github.com/smart-timetable/dashboard-api/pkg/config"
	"github.com/smart-timetable/dashboard-api/pkg/jobs"
	"github.com/smart-timetable/dashboard-api/pkg/logger"
	corsmiddleware "github.com/smart-timetable/dashboard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/smart-timetable/dashboard-api/pkg/middleware/requestid"
)

// @title Smart Timetable Dashboard API
// @version 1.0.0
// @description Dashboard backend that mirrors the scheduling service and keeps serving from a durable local store when it is unreachable.
// @BasePath /api
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := localstore.Open(cfg.LocalStore.Path, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open local store", "path", cfg.LocalStore.Path, "error", err)
	}
	defer store.Close() //nolint:errcheck

	metrics := service.NewMetricsService()

	remote := gateway.New(gateway.Config{
		BaseURL:        cfg.Remote.BaseURL,
		RequestTimeout: cfg.Remote.RequestTimeout,
		Logger:         logr,
	})
	remote.Start()

	arbiter := sync.NewArbiter(func() sync.RemoteProbe { return remote }, store, sync.ArbiterConfig{
		PollInterval:        cfg.Sync.PollInterval,
		GatewayWaitAttempts: cfg.Sync.GatewayWaitAttempts,
		ReadyWaitAttempts:   cfg.Sync.ReadyWaitAttempts,
		ProbeTimeout:        cfg.Remote.HealthTimeout,
	}, logr, metrics)

	// The mode is fixed here for the process lifetime. Restart to re-arbitrate.
	mode := arbiter.Decide(ctx)

	syncer := sync.New(sync.Params{
		Mode:    mode,
		Gateway: remote,
		KV:      store,
		Logger:  logr,
		Metrics: metrics,
	})

	cacheEnabled := cfg.Cache.Enabled
	var redisClient *redis.Client
	if cacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, statistics cache disabled", zap.Error(err))
			cacheEnabled = false
		} else {
			defer redisClient.Close() //nolint:errcheck
		}
	}
	statsCache := service.NewCacheService(redisClient, metrics, cfg.Cache.StatsTTL, logr, cacheEnabled)

	auth := service.NewAuthService(syncer, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
	})
	stats := service.NewStatsService(syncer, statsCache, cfg.Cache.StatsTTL, logr)
	reschedule := service.NewRescheduleService(syncer, logr, jobs.QueueConfig{
		Workers:    cfg.Jobs.Workers,
		BufferSize: cfg.Jobs.BufferSize,
		MaxRetries: cfg.Jobs.MaxRetries,
		RetryDelay: cfg.Jobs.RetryDelay,
	}, cfg.Jobs.Enabled)
	reschedule.Start(ctx)
	defer reschedule.Stop()

	healthHandler := handler.NewHealthHandler(store, syncer)
	facultyHandler := handler.NewFacultyHandler(syncer)
	roomHandler := handler.NewRoomHandler(syncer)
	subjectHandler := handler.NewSubjectHandler(syncer)
	breakHandler := handler.NewBreakHandler(syncer)
	practicalHandler := handler.NewPracticalHandler(syncer)
	leaveHandler := handler.NewLeaveHandler(syncer, reschedule, stats)
	timetableHandler := handler.NewTimetableHandler(syncer)
	authHandler := handler.NewAuthHandler(auth)
	statsHandler := handler.NewStatsHandler(stats)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	// Reads stay open: the dashboard renders them before anyone signs in.
	api.GET("/faculty", facultyHandler.List)
	api.GET("/rooms", roomHandler.List)
	api.GET("/subjects", subjectHandler.List)
	api.GET("/breaks", breakHandler.List)
	api.GET("/practicals", practicalHandler.List)
	api.GET("/leave-requests", leaveHandler.List)
	api.GET("/timetable", timetableHandler.Get)
	api.GET("/statistics", statsHandler.Get)

	authRoutes := api.Group("/auth")
	authRoutes.POST("/login", authHandler.Login)
	session := authRoutes.Group("", middleware.JWT(auth))
	session.GET("/me", authHandler.Me)
	session.POST("/logout", authHandler.Logout)

	// Writes split into two tiers once the guard is on: staff routes accept
	// any signed-in user, admin routes demand the admin role.
	admin := api.Group("")
	staff := api.Group("")
	if cfg.Auth.GuardEnabled {
		admin.Use(middleware.JWT(auth), middleware.RequireRoles(models.RoleAdmin))
		staff.Use(middleware.JWT(auth))
	}

	admin.POST("/faculty", facultyHandler.Create)
	admin.PUT("/faculty/:id", facultyHandler.Update)
	admin.DELETE("/faculty/:id", facultyHandler.Delete)
	admin.POST("/rooms", roomHandler.Create)
	admin.DELETE("/rooms/:id", roomHandler.Delete)
	admin.POST("/subjects", subjectHandler.Create)
	admin.DELETE("/subjects/:id", subjectHandler.Delete)
	admin.POST("/breaks", breakHandler.Create)
	admin.PUT("/breaks/:id", breakHandler.Update)
	admin.DELETE("/breaks/:id", breakHandler.Delete)
	admin.POST("/practicals", practicalHandler.Create)
	admin.PUT("/practicals/:id", practicalHandler.Update)
	admin.DELETE("/practicals/:id", practicalHandler.Delete)

	staff.POST("/leave-requests", leaveHandler.Create)
	admin.PUT("/leave-requests/:id", leaveHandler.UpdateStatus)

	admin.POST("/generate-timetable", timetableHandler.Generate)
	admin.POST("/publish-timetable", timetableHandler.Publish)
	admin.POST("/auto-reschedule", timetableHandler.AutoReschedule)

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("failed to shut down server", zap.Error(err))
		}
	}()

	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "mode", mode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
