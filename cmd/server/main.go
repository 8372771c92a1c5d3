// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	applicationRouter "github.com/fireteam/teamfinder/internal/application/router"
	authRepository "github.com/fireteam/teamfinder/internal/auth/repository"
	authRouter "github.com/fireteam/teamfinder/internal/auth/router"
	"github.com/fireteam/teamfinder/internal/config"
	dashboardRouter "github.com/fireteam/teamfinder/internal/dashboard/router"
	"github.com/fireteam/teamfinder/internal/database"
	eventRouter "github.com/fireteam/teamfinder/internal/event/router"
	"github.com/fireteam/teamfinder/internal/health"
	"github.com/fireteam/teamfinder/internal/middleware"
	profileRouter "github.com/fireteam/teamfinder/internal/profile/router"
	teamRouter "github.com/fireteam/teamfinder/internal/team/router"
	"github.com/fireteam/teamfinder/internal/validation"
	"github.com/fireteam/teamfinder/pkg/logger"
	"github.com/fireteam/teamfinder/pkg/storage"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zlog.Sync()
	}()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zlog.Errorw("failed to close database connection", "error", closeErr)
		}
	}()

	if err := database.Migrate(db); err != nil {
		zlog.Fatalw("failed to apply migrations", "error", err)
	}

	rdb, err := database.ConnectRedis(cfg.Redis)
	if err != nil {
		zlog.Fatalw("failed to connect to redis", "error", err)
	}
	defer func() {
		if closeErr := rdb.Close(); closeErr != nil {
			zlog.Errorw("failed to close redis connection", "error", closeErr)
		}
	}()

	store, err := storage.NewCloudinary()
	if err != nil {
		zlog.Fatalw("failed to initialize image storage", "error", err)
	}

	if err := validation.Register(); err != nil {
		zlog.Fatalw("failed to register custom validators", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(zlog))
	r.Use(middleware.Recovery(zlog))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	codes := authRepository.NewCodeStore(rdb)
	requireAuth := middleware.RequireAuth(cfg.Auth.JWTSecret, codes, zlog)

	authRouter.RegisterRoutes(r, db, codes, requireAuth, cfg.Auth, zlog)
	profileRouter.RegisterRoutes(r, db, store, requireAuth, zlog)
	teamRouter.RegisterRoutes(r, db, requireAuth, zlog)
	applicationRouter.RegisterRoutes(r, db, requireAuth, zlog)
	eventRouter.RegisterRoutes(r, db, store, requireAuth, zlog)
	dashboardRouter.RegisterRoutes(r, db, requireAuth, zlog)

	healthHandler := health.New(db, rdb, zlog)
	r.GET("/health", healthHandler.Check)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Infow("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Errorw("forced shutdown", "error", err)
	}
	zlog.Infow("server stopped")
}
