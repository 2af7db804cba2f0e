// Command client exercises a running restaurant API: it signs up a demo
// user, logs in, seeds the menu when empty, books a table and lists bookings.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/littlelemon/restaurant-system/internal/client"
	"github.com/littlelemon/restaurant-system/internal/pkg/config"
	"github.com/littlelemon/restaurant-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadClient(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Service: "restaurant-client",
	})

	c := client.New(cfg.BaseURL, cfg.Timeout)
	creds := client.Credentials{
		Username: cfg.Username,
		Password: cfg.Password,
		Email:    cfg.Email,
	}

	log.Info().Str("base_url", cfg.BaseURL).Msg("running demo")
	if _, err := client.RunDemo(ctx, c, creds, log); err != nil {
		log.Fatal().Err(err).Msg("demo interrupted")
	}
}
