package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ademomeragic/budget-tracker-sub000/internal/config"
	"github.com/ademomeragic/budget-tracker-sub000/internal/scheduler"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/exchange"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/log"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/redis"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()
	exchangeClient := exchange.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithExchangeClient(exchangeClient),
		config.WithMiddleware(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backgroundScheduler := scheduler.New(
		logger,
		server.GoalEvaluator(),
		server.RecurringProcessor(),
		intervalFromEnv("EVALUATION_INTERVAL"),
		intervalFromEnv("RECURRING_INTERVAL"),
	)
	go backgroundScheduler.Run(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	cancel()

	if err := server.Shutdown(); err != nil {
		logger.Errorf("Error shutting down server: %v", err)
	}
}

func intervalFromEnv(key string) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}

	interval, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}

	return interval
}
