package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"stockroom/internal/server"
	"stockroom/internal/shared"
	"stockroom/internal/store"
)

func main() {
	cfg := shared.LoadServerConfig(":8087")
	shared.InitLogging(cfg.LogLevel)

	api := &server.InventoryAPI{
		Items:    store.NewInventoryStore(),
		Accounts: store.NewAccountStore(),
		Started:  time.Now(),
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.NewInventoryRouter(api),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("sr-inventory listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("sr-inventory stopped")
}
