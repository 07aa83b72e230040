// The dashboard host serves the browser-facing session surface of the
// autoflex production-control UI: login, logout, and the who-am-I probe the
// client runs on every page load. All inventory data flows through the
// orchestrator layer against the upstream inventory API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/naiconmartins/autoflex-production-control/internal/api"
	redisdb "github.com/naiconmartins/autoflex-production-control/internal/infrastructure/db/redis"
	"github.com/naiconmartins/autoflex-production-control/internal/pkg/config"
	"github.com/naiconmartins/autoflex-production-control/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The session cache is optional: a down Redis only costs extra upstream
	// probes, so startup continues without it.
	var rdb *goredis.Client
	client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("session cache unavailable, continuing without it")
	} else {
		rdb = client
		defer rdb.Close()
	}

	e, err := api.NewRouter(cfg, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("api_url", cfg.APIURL).Msg("dashboard host listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
