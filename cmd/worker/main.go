package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/ghuser/fridgepal/pkg/app"
	"github.com/ghuser/fridgepal/pkg/cache"
	"github.com/ghuser/fridgepal/pkg/config"
	"github.com/ghuser/fridgepal/pkg/database"
	"github.com/ghuser/fridgepal/pkg/events"
	"github.com/ghuser/fridgepal/pkg/logger"
	"github.com/ghuser/fridgepal/pkg/telemetry"
	"github.com/ghuser/fridgepal/pkg/workflows"
	fridgeServices "github.com/ghuser/fridgepal/services/fridge/application/services"
	"github.com/ghuser/fridgepal/services/fridge/application/subscribers"
	fridgeWorkflows "github.com/ghuser/fridgepal/services/fridge/application/workflows"
)

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	appConfig := &app.Application{Config: cfg, Logger: log}

	if cfg.NeedsDatabase() {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer pool.Close() //nolint:errcheck
		log.Info("database pool connected")
		appConfig.Db = pool
	}

	if cfg.EventsEnabled {
		eventBus, err := events.NewEventBus(appConfig.Db.DB(), cfg.ServiceName, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer eventBus.Close() //nolint:errcheck
		appConfig.EventBus = eventBus
	}

	if cfg.CacheEnabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
		appConfig.Redis = redisClient
	}

	if cfg.TemporalEnabled {
		temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
		appConfig.TemporalClient = temporalClient
	}

	if appConfig.EventBus == nil && appConfig.TemporalClient == nil {
		log.Warn("nothing to run: EVENTS_ENABLED and TEMPORAL_ENABLED are both off")
		return
	}

	g, gctx := errgroup.WithContext(ctx)

	if appConfig.EventBus != nil {
		if err := registerSubscribers(gctx, appConfig); err != nil {
			log.Error("failed to register subscribers", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	if appConfig.TemporalClient != nil {
		svcs, err := fridgeServices.New(appConfig)
		if err != nil {
			log.Error("failed to initialize fridge services", "error", err)
			os.Exit(1) //nolint:gocritic
		}

		tc := appConfig.TemporalClient
		w := tc.NewWorker(cfg.TemporalTaskQueue)
		fridgeWorkflows.Register(w, &fridgeWorkflows.Activities{Inventory: svcs.Inventory})

		g.Go(func() error { return tc.RunWorker(gctx, w) })
		g.Go(func() error {
			return tc.StartCron(gctx, fridgeWorkflows.ExpirySweepWorkflowID, cfg.TemporalTaskQueue,
				cfg.ExpirySweepCron, fridgeWorkflows.ExpirySweepWorkflow)
		})
	}

	log.Info("worker running")
	<-gctx.Done()
	log.Info("shutting down worker...")

	if err := g.Wait(); err != nil {
		log.Error("worker stopped with error", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires the fridge event handlers. List invalidation is
// only subscribed when Redis is configured.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	var lists subscribers.Invalidator
	if a.Redis != nil {
		lists = cache.NewListCache(a.Redis)
	}
	h := subscribers.New(lists, a.Logger)
	return subscribers.Register(ctx, a.EventBus, h.Routes(), a.Logger)
}
