// Command api runs the Little Lemon restaurant HTTP API.
//
// @title                       Little Lemon Restaurant API
// @version                     1.0
// @description                 Menu catalog, table bookings and user accounts for the Little Lemon restaurant.
// @BasePath                    /
// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        Authorization
// @description                 Value: "Token <auth_token>"
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/littlelemon/restaurant-system/internal/api"
	"github.com/littlelemon/restaurant-system/internal/api/handler"
	"github.com/littlelemon/restaurant-system/internal/core/service"
	"github.com/littlelemon/restaurant-system/internal/infrastructure/db"
	"github.com/littlelemon/restaurant-system/internal/infrastructure/db/redis"
	"github.com/littlelemon/restaurant-system/internal/pkg/config"
	"github.com/littlelemon/restaurant-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "restaurant-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to open storage")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Timeout:  cfg.Redis.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to Redis")
	}
	tokens := redis.NewTokenStore(rdb)

	e := api.NewRouter(api.Dependencies{
		Menu:     service.NewMenuService(store.Menu, logger.Component("menu")),
		Bookings: service.NewBookingService(store.Bookings, logger.Component("booking")),
		Users:    service.NewUserService(store.Users, tokens, logger.Component("user")),
		Auth:     service.NewAuthService(store.Users, tokens, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth")),
		Checks: []handler.DependencyCheck{
			{Name: store.Driver, Ping: store.Ping},
			{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		},
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", store.Driver).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close Redis client")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to close storage")
	}
}
