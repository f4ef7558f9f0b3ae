package app

import (
	"github.com/ghuser/fridgepal/pkg/cache"
	"github.com/ghuser/fridgepal/pkg/config"
	"github.com/ghuser/fridgepal/pkg/database"
	"github.com/ghuser/fridgepal/pkg/events"
	"github.com/ghuser/fridgepal/pkg/logger"
	"github.com/ghuser/fridgepal/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to the service constructors during process initialization.
//
// Optional dependencies are nil when the configuration disables them:
// Db without a Postgres store or event bus, EventBus when EVENTS_ENABLED is
// false, Redis when REDIS_URL is empty, TemporalClient unless
// TEMPORAL_ENABLED is true.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item restored", "item_id", id)
//	app.Logger.ErrorContext(ctx, "update failed", "error", err)
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
}
