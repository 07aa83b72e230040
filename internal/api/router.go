package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/naiconmartins/autoflex-production-control/internal/api/handler"
	"github.com/naiconmartins/autoflex-production-control/internal/api/middleware"
	"github.com/naiconmartins/autoflex-production-control/internal/core/ports"
	"github.com/naiconmartins/autoflex-production-control/internal/core/service"
	"github.com/naiconmartins/autoflex-production-control/internal/gateway"
	redisdb "github.com/naiconmartins/autoflex-production-control/internal/infrastructure/db/redis"
	"github.com/naiconmartins/autoflex-production-control/internal/pkg/config"
	"github.com/naiconmartins/autoflex-production-control/internal/state"
	"github.com/naiconmartins/autoflex-production-control/internal/transport"
)

// NewRouter builds the Echo instance with the session surface, health
// probes, and metrics registered. rdb may be nil; the session cache is then
// disabled and every session check probes the upstream API.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("autoflex_dashboard"))

	// --- Dependencies ---
	client, err := transport.NewClient(cfg.APIURL, log)
	if err != nil {
		return nil, err
	}

	stores := state.NewStores()
	authGW := gateway.NewAuthGateway(client)
	authService := service.NewAuthService(authGW, stores, log)

	var cache ports.UserCache
	if rdb != nil {
		cache = redisdb.NewUserCache(rdb, cfg.SessionCacheTTL)
	}

	authHandler := handler.NewAuthHandler(authService, authGW, cache, cfg.IsProduction(), log)

	// --- Session surface ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me, middleware.Session())

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
