package telemetry

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/fridgepal/pkg/config"
)

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(SentryOptions(cfg)); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// SentryOptions builds the client options for cfg. Every event is tagged
// with the store driver and optional backends so issues can be split by
// deployment shape. Development traces everything.
func SentryOptions(cfg *config.Config) sentry.ClientOptions {
	rate := 0.2
	if cfg.Environment == "development" {
		rate = 1.0
	}
	return sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: rate,
		Tags: map[string]string{
			"service":        cfg.ServiceName,
			"store_driver":   cfg.StoreDriver,
			"cache_enabled":  strconv.FormatBool(cfg.RedisURL != ""),
			"events_enabled": strconv.FormatBool(cfg.EventsEnabled),
		},
	}
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware returns a net/http middleware that captures panics and errors.
// Repanic: true so the outer Recovery middleware still handles the 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}
