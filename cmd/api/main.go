package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-payment-service/config"
	httpHandler "bank-payment-service/internal/adapter/http/handler"
	pgStorage "bank-payment-service/internal/adapter/storage/postgres"
	redisStorage "bank-payment-service/internal/adapter/storage/redis"
	"bank-payment-service/internal/core/domain"
	"bank-payment-service/internal/core/ports"
	"bank-payment-service/internal/service"
	"bank-payment-service/pkg/logger"
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
		Msg("Starting Bank Payment Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Storage adapters
	accountRepo := pgStorage.NewAccountRepo(pool)
	executionGuard := redisStorage.NewExecutionGuard(rdb)

	// Fee policies, applied in configuration order
	policies := make([]domain.PaymentFeePolicy, 0, len(cfg.Payment.FeePercents))
	for _, percent := range cfg.Payment.FeePercents {
		policies = append(policies, domain.NewPercentagePaymentFeePolicy(percent))
	}

	// Business services
	paymentSvc := service.NewPaymentService(accountRepo, executionGuard, cfg.Payment.MaxDailyPayments, policies, log)
	makePaymentSvc := service.NewMakePaymentService(accountRepo, paymentSvc, log)

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		MakePaymentSvc: makePaymentSvc,
		AccountRepo:    accountRepo,
		AccountCreator: accountRepo,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
