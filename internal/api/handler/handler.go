// Package handler provides HTTP handlers for all API endpoints. Handlers call
// the report flows directly and cache the encoded JSON in process.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/courtside/hoopstats/internal/api/respond"
	"github.com/courtside/hoopstats/internal/cache"
	"github.com/courtside/hoopstats/internal/report"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	src    report.Source
	cache  *cache.Cache
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Handler with shared dependencies.
func New(src report.Source, c *cache.Cache, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		src:    src,
		cache:  c,
		logger: logger,
		now:    time.Now,
	}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":   "hoopstats",
		"status": "running",
		"endpoints": []string{
			"/api/v1/teams/grouped",
			"/api/v1/team-stats/{season}",
			"/api/v1/players/{name}",
		},
	})
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}
