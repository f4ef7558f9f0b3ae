package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/fridgepal/docs/swagger"
	"github.com/ghuser/fridgepal/pkg/app"
	"github.com/ghuser/fridgepal/pkg/cache"
	"github.com/ghuser/fridgepal/pkg/config"
	"github.com/ghuser/fridgepal/pkg/database"
	"github.com/ghuser/fridgepal/pkg/events"
	"github.com/ghuser/fridgepal/pkg/httpx"
	"github.com/ghuser/fridgepal/pkg/logger"
	"github.com/ghuser/fridgepal/pkg/telemetry"
	fridgeApi "github.com/ghuser/fridgepal/services/fridge/application/api"
	fridgeServices "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// @title			FridgePal API
// @version		1.0
// @description	Household fridge inventory: items, trash, low-stock alerts and recipe suggestions.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/
// @schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	appConfig := &app.Application{Config: cfg, Logger: log}
	health := httpx.HealthChecks{}

	if cfg.NeedsDatabase() {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer pool.Close() //nolint:errcheck
		log.Info("database pool connected")
		appConfig.Db = pool
		health["database"] = pool
	}

	if cfg.EventsEnabled {
		eventBus, err := events.NewEventBusWithForwarder(appConfig.Db.DB(), cfg.ServiceName, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer eventBus.Close() //nolint:errcheck

		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		appConfig.EventBus = eventBus
		health["event_bus"] = eventBus
	}

	if cfg.CacheEnabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
		appConfig.Redis = redisClient
		health["redis"] = redisClient
	}

	svcs, err := fridgeServices.New(appConfig)
	if err != nil {
		log.Error("failed to initialize fridge services", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	health["store"] = svcs.Store
	log.Info("document store ready", "driver", cfg.StoreDriver)

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(health))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	registerRoutes(r, svcs)

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts the fridge routes at the root, where the web client
// expects them.
func registerRoutes(r chi.Router, svcs *fridgeServices.Services) {
	fridgeApi.FridgeRoutes(r, svcs)
}
