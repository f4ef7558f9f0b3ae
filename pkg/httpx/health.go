package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any dependency that exposes a Ping method
// (document stores, RedisClient and EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks maps a dependency name ("store", "redis", "event_bus") to its
// checker. Nil checkers are skipped so optional dependencies can be left out.
type HealthChecks map[string]HealthChecker

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// checkers and reports degraded status (503) if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		for name, c := range checks {
			if c == nil {
				continue
			}
			if err := c.Ping(ctx); err != nil {
				resp.Status = "degraded"
				resp.Checks[name] = "unreachable"
				continue
			}
			resp.Checks[name] = "ok"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
