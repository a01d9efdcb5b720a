package handlers

import (
	"log/slog"
	nethttp "net/http"

	appgames "github.com/preston-bernstein/nba-insights-service/internal/app/games"
	appplayers "github.com/preston-bernstein/nba-insights-service/internal/app/players"
	appteams "github.com/preston-bernstein/nba-insights-service/internal/app/teams"
	"github.com/preston-bernstein/nba-insights-service/internal/poller"
)

// Handler wires HTTP routes to the app services.
type Handler struct {
	players  *appplayers.Service
	games    *appgames.Service
	teams    *appteams.Service
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. A nil statusFn reports ready unconditionally.
func NewHandler(players *appplayers.Service, games *appgames.Service, teams *appteams.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		players:  players,
		games:    games,
		teams:    teams,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}
