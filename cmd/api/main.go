package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/developerUmair/ecommerce-backend/internal/bootstrap"
	"github.com/developerUmair/ecommerce-backend/internal/config"
	"github.com/developerUmair/ecommerce-backend/internal/logger"
)

func main() {
	// .env is for local dev only; missing file is fine.
	_ = godotenv.Load()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	app, err := bootstrap.New(ctx, cfg)
	cancel()
	if err != nil {
		zlog.Fatal().Err(err).Msg("bootstrap failed")
	}
	defer app.Close()

	errCh := make(chan error, 1)
	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Env).Msg("listening")
		errCh <- app.Server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		zlog.Info().Str("signal", sig.String()).Msg("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			zlog.Error().Err(err).Msg("graceful shutdown failed")
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server crashed")
		}
	}
}
