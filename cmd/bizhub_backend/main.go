package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/bizhub_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/bizhub_pricing/internal/core/services"
	"github.com/SscSPs/bizhub_pricing/internal/handlers"
	"github.com/SscSPs/bizhub_pricing/internal/middleware"
	"github.com/SscSPs/bizhub_pricing/internal/platform/cache"
	"github.com/SscSPs/bizhub_pricing/internal/platform/config"
	"github.com/SscSPs/bizhub_pricing/internal/platform/scheduler"
	"github.com/SscSPs/bizhub_pricing/internal/repositories/database/pgsql"
	"github.com/SscSPs/bizhub_pricing/internal/utils"
	"github.com/SscSPs/bizhub_pricing/internal/validation"
	"github.com/SscSPs/bizhub_pricing/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title BizHub Pricing API
// @version 1.0
// @description Multi-currency pricing, invoicing and point-of-sale backend for BizHub.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// "bizhub_backend hash-password <password>" prints a value for ADMIN_PASSWORD_HASH.
	if len(os.Args) == 3 && os.Args[1] == "hash-password" {
		hash, err := utils.HashPassword(os.Args[2])
		if err != nil {
			logger.Error("Failed to hash password", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		return err
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	if cfg.RedisAddr != "" {
		redisClient, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
		repos.SnapshotCache = cache.NewSnapshotCache(redisClient, cfg.SnapshotCacheTTL)
		logger.Info("Pricing snapshot cache enabled", slog.String("addr", cfg.RedisAddr), slog.Duration("ttl", cfg.SnapshotCacheTTL))
	} else {
		logger.Info("REDIS_ADDR not set, pricing snapshot cache disabled")
	}

	container := services.NewServiceContainer(cfg, repos)

	warmer, err := startSnapshotWarmer(ctx, repos.SnapshotCache, container.Pricing, cfg.SnapshotRefreshSchedule, logger)
	if err != nil {
		return err
	}

	validation.Initialize()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		warmer.Stop(context.Background())
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	warmer.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

// startSnapshotWarmer schedules cache refreshes. Without a cache there is nothing to
// keep warm and it returns nil.
func startSnapshotWarmer(ctx context.Context, snapshotCache portsrepo.SnapshotCache, refresher scheduler.SnapshotRefresher, schedule string, logger *slog.Logger) (*scheduler.SnapshotWarmer, error) {
	if snapshotCache == nil {
		logger.Info("Snapshot warmer disabled, no cache configured")
		return nil, nil
	}
	warmer := scheduler.NewSnapshotWarmer(refresher, schedule, logger)
	if err := warmer.Start(ctx); err != nil {
		return nil, err
	}
	return warmer, nil
}
