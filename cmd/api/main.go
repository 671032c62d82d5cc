package main

// @title Accident Analytics API
// @version 1.0.0
// @description Analytics service for the Swiss road traffic accident dataset. Provides filtered record access, DBSCAN-based blackspot clustering with per-cluster risk scoring, and summary, risk, temporal and seasonal statistics.

// @contact.name API Support
// @contact.email support@accident-analytics.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/accident-analytics/docs/swagger"
	"github.com/accident-analytics/internal/config"
	httpDelivery "github.com/accident-analytics/internal/delivery/http"
	"github.com/accident-analytics/internal/delivery/http/handler"
	"github.com/accident-analytics/internal/pkg/logger"
	"github.com/accident-analytics/internal/repository/cache"
	"github.com/accident-analytics/internal/repository/postgres"
	"github.com/accident-analytics/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Accident Analytics")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	accidentRepo := postgres.NewAccidentRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	accidentUC := usecase.NewAccidentUseCase(accidentRepo, log)
	blackspotUC := usecase.NewBlackspotUseCase(
		accidentRepo,
		cacheRepo,
		log,
		cfg.Cache.BlackspotCacheTTL,
	)
	statsUC := usecase.NewStatsUseCase(
		accidentRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)
	trendsUC := usecase.NewTrendsUseCase(accidentRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	accidentHandler := handler.NewAccidentHandler(accidentUC, log)
	blackspotHandler := handler.NewBlackspotHandler(blackspotUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	trendsHandler := handler.NewTrendsHandler(trendsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		accidentHandler,
		blackspotHandler,
		statsHandler,
		trendsHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
