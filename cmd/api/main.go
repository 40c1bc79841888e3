package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"places-api/config"
	"places-api/internal/handler"
	"places-api/internal/ratelimit"
	"places-api/internal/redis"
	"places-api/internal/repository"
	"places-api/internal/server"
	"places-api/internal/services"
	"places-api/pkg/database"
	"places-api/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.AppMode)
	logger.SetGlobalLogger(l)

	err := run(cfg, l)
	if err != nil {
		l.Errorf("%s", err)
	}
	l.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run owns every resource it opens, so each return path closes them.
func run(cfg *config.Config, l *logger.Logger) error {
	ctx := context.Background()

	// The listener must not start without a store.
	client, err := database.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			l.Errorf("Error disconnecting from database: %s", err)
		}
	}()
	db := client.Database(cfg.MongoDB)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to create database indexes: %w", err)
	}
	l.Infof("Connected to MongoDB database %q", cfg.MongoDB)

	placeRepo := repository.NewPlaceRepository(db)
	userRepo := repository.NewUserRepository(db)

	placeService := services.NewPlaceService(placeRepo, cfg.PlaceholderImageURL)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, cfg.BcryptCost, cfg.PlaceholderImageURL)

	limiter, closeLimiter, err := newAuthLimiter(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up rate limiter: %w", err)
	}
	defer closeLimiter()

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Place: handler.NewPlaceHandler(placeService),
		User:  handler.NewUserHandler(userService),
		Auth:  handler.NewAuthHandler(authService),
	}, limiter, func(ctx context.Context) error {
		return database.HealthCheck(ctx, client)
	})

	if err := srv.Start(); err != nil {
		return fmt.Errorf("server exited with error: %w", err)
	}
	return nil
}

// newAuthLimiter builds the configured limiter and a func releasing it.
func newAuthLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, func(), error) {
	window := time.Duration(cfg.RateLimitWindowSec) * time.Second
	noop := func() {}

	switch cfg.RateLimitBackend {
	case "off", "":
		return nil, noop, nil
	case "redis":
		client, err := redis.NewClient(ctx, redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, noop, err
		}
		return redis.NewRateLimiter(client, cfg.RateLimitAuth, window), func() { _ = client.Close() }, nil
	default:
		return ratelimit.NewLocalLimiter(cfg.RateLimitAuth, window), noop, nil
	}
}
