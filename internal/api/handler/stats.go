package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/hoopstats/internal/api/respond"
	"github.com/courtside/hoopstats/internal/cache"
	"github.com/courtside/hoopstats/internal/provider/bdl"
	"github.com/courtside/hoopstats/internal/report"
	"github.com/courtside/hoopstats/internal/validate"
)

// GetGroupedTeams returns every team bucketed by division.
func (h *Handler) GetGroupedTeams(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "teams:grouped", cache.TTLTeams, func() (interface{}, error) {
		return report.GroupedTeams(r.Context(), h.src, h.logger)
	})
}

// GetTeamStats returns the home/visitor record of every team for a season.
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	season, err := strconv.Atoi(chi.URLParam(r, "season"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_SEASON", "season must be a year")
		return
	}
	now := h.now()
	if err := validate.Season(season, now); err != nil {
		h.writeError(w, err)
		return
	}

	ttl := cache.TTLPastSeason
	if season >= now.Year()-1 {
		ttl = cache.TTLCurrentSeason
	}
	h.serveCached(w, r, fmt.Sprintf("team-stats:%d", season), ttl, func() (interface{}, error) {
		return report.TeamStats(r.Context(), h.src, season, h.logger)
	})
}

// GetPlayerStats returns the matched players plus the tallest and heaviest
// among them.
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := validate.PlayerName(name); err != nil {
		h.writeError(w, err)
		return
	}

	key := "players:" + strings.ToLower(strings.TrimSpace(name))
	h.serveCached(w, r, key, cache.TTLPlayers, func() (interface{}, error) {
		return report.PlayerStats(r.Context(), h.src, name, h.logger)
	})
}

// serveCached answers from the cache when possible, otherwise builds, encodes
// and stores the value.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, build func() (interface{}, error)) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := build()
	if err != nil {
		h.writeError(w, err)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		h.writeError(w, fmt.Errorf("encode %s: %w", key, err))
		return
	}

	etag := h.cache.Set(key, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if vErr, ok := validate.AsValidationError(err); ok {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "VALIDATION_ERROR", vErr.Message, vErr.Field)
		return
	}
	if tErr, ok := bdl.AsTransportError(err); ok {
		h.logger.Error("upstream request failed", "path", tErr.Path, "status", tErr.StatusCode, "error", tErr.Err)
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "BallDontLie request failed")
		return
	}
	h.logger.Error("request failed", "error", err)
	respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error")
}
