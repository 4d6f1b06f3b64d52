package main

// @title Trip Planner API
// @version 1.0.0
// @description Service that optimizes single-day trip itineraries. Given places with opening hours, breaks and meal preferences, it computes effective visit windows, expands restaurants into per-meal candidates, and searches every meal combination for the cheapest feasible route through the day.
// @description
// @description Main capabilities:
// @description - Single-day route optimization with per-place time windows
// @description - Restaurant selection per meal slot (breakfast, lunch, dinner)
// @description - Day-type aware start and end anchoring (transport, accommodation)
// @description - Persisting and retrieving winning itineraries

// @contact.name API Support

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

	_ "github.com/chronopilferer/Trendy-Trip-Algorithm/docs"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/config"
	httpDelivery "github.com/chronopilferer/Trendy-Trip-Algorithm/internal/delivery/http"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/delivery/http/handler"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/logger"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/repository/cache"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/repository/postgres"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/distance"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/routing"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/solver/timewindow"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/usecase"
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

	log.Info("Starting Trip Planner")
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

	// 6. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	itineraryRepo := postgres.NewItineraryRepository(db, log)

	log.Info("Repositories initialized")

	// 7. Initialize solver components
	calculator := timewindow.NewCalculator(log)
	estimator := distance.NewHaversineEstimator()
	optimizer := routing.NewOptimizer(routing.Options{
		SkipPenalty:   cfg.Solver.SkipPenalty,
		LatenessCoeff: cfg.Solver.LatenessCoeff,
		GraceMinutes:  cfg.Solver.GraceMinutes,
		TimeBudget:    cfg.Solver.TimeBudget,
	}, log)

	// 8. Initialize use cases
	planUC := usecase.NewPlanUseCase(
		calculator,
		estimator,
		optimizer,
		cacheRepo,
		log,
		usecase.PlanOptions{
			MaxPlaces:   cfg.Solver.MaxPlaces,
			MaxParallel: cfg.Solver.MaxParallel,
			CacheTTL:    cfg.Cache.PlanCacheTTL,
		},
	)

	itineraryUC := usecase.NewItineraryUseCase(planUC, itineraryRepo, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers and server
	planHandler := handler.NewPlanHandler(planUC, log)
	itineraryHandler := handler.NewItineraryHandler(itineraryUC, log)

	server := httpDelivery.NewServer(
		cfg,
		log,
		planHandler,
		itineraryHandler,
		db,
		redisClient,
	)

	log.Info("HTTP server initialized")

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
