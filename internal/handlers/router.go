package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

const healthTimeout = 2 * time.Second

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// NewRouter wires the Slack endpoints, the health check and the metrics endpoint.
func NewRouter(h *SlackHandler, health HealthChecker, gatherer prometheus.Gatherer, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /slack/commands", h.HandleSlashCommand)
	mux.HandleFunc("POST /slack/actions", h.HandleAction)
	mux.HandleFunc("POST /slack/events", h.HandleEvents)
	mux.HandleFunc("GET /health", healthHandler(health, log))
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	chain := hlog.NewHandler(log)
	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Dur("duration", duration).
			Msg("request")
	})

	return chain(access(mux))
}

func healthHandler(health HealthChecker, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := health.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("UNAVAILABLE"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
