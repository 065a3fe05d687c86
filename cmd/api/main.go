package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pix-withdrawal-service/config"
	httpHandler "pix-withdrawal-service/internal/adapter/http/handler"
	"pix-withdrawal-service/internal/adapter/notifier"
	pgStorage "pix-withdrawal-service/internal/adapter/storage/postgres"
	redisStorage "pix-withdrawal-service/internal/adapter/storage/redis"
	"pix-withdrawal-service/internal/core/ports"
	"pix-withdrawal-service/internal/service"
	"pix-withdrawal-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting PIX Withdrawal Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	withdrawalRepo := pgStorage.NewWithdrawalRepo(pool)
	pixRepo := pgStorage.NewPixDestinationRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize the settlement engine
	registry := service.NewMethodRegistry(service.NewPixWithdrawMethod())
	settlementNotifier := notifier.NewSMTPNotifier(cfg.SMTP, log)
	withdrawalSvc := service.NewWithdrawalService(
		accountRepo,
		withdrawalRepo,
		pixRepo,
		registry,
		settlementNotifier,
		transactor,
		log,
	)

	// Scheduled-withdrawal sweep (one active instance cluster-wide)
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	if cfg.Sweep.Enabled {
		sweepLock := redisStorage.NewSweepLock(rdb)
		sweep := service.NewSweepService(withdrawalRepo, withdrawalSvc, sweepLock, service.SweepConfig{
			Interval: cfg.Sweep.Interval,
			LockKey:  cfg.Sweep.LockKey,
			LockTTL:  cfg.Sweep.LockTTL,
		}, log)
		go sweep.Start(sweepCtx)
	} else {
		log.Info().Msg("sweep disabled by configuration")
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WithdrawalSvc:  withdrawalSvc,
		AccountRepo:    accountRepo,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
