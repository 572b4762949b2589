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
	cfg := shared.LoadServerConfig(":8086")
	shared.InitLogging(cfg.LogLevel)

	var users store.UserStore
	switch cfg.Backend {
	case shared.BackendSQLite:
		db, err := store.OpenMemoryDB()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open sqlite")
		}
		defer db.Close()
		users, err = store.NewSQLiteUserStore(db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init sqlite store")
		}
	case shared.BackendMemory:
		users = store.NewMemoryUserStore()
	default:
		log.Fatal().Str("backend", cfg.Backend).Msg("unknown SR_STORE backend")
	}

	api := &server.UserAPI{
		Users:   users,
		Started: time.Now(),
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.NewUserRouter(api),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("backend", cfg.Backend).Msg("sr-users listening")
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
	log.Info().Msg("sr-users stopped")
}
