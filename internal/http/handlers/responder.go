package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	appplayers "github.com/preston-bernstein/nba-insights-service/internal/app/players"
	domainplayers "github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-insights-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-insights-service/internal/logging"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorBody(r, message), logger)
}

func errorBody(r *http.Request, message string) map[string]any {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]any{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	return body
}

// writeServiceError maps service errors onto statuses. Unresolved queries
// carry their suggestions.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, res domainplayers.Resolution, logger *slog.Logger) {
	switch {
	case errors.Is(err, appplayers.ErrBlankQuery):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, roster.ErrUnknownCategory), errors.Is(err, appplayers.ErrInvalidSeason):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, appplayers.ErrNoMatch):
		body := errorBody(r, err.Error())
		body["query"] = res.Query
		if len(res.Suggestions) > 0 {
			body["suggestions"] = res.Suggestions
		}
		writeJSON(w, http.StatusNotFound, body, logger)
	case errors.Is(err, appplayers.ErrPlayerNotFound), errors.Is(err, roster.ErrPlayerNotFound):
		writeError(w, r, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, appplayers.ErrNotReady), errors.Is(err, appplayers.ErrShotsUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, err.Error(), logger)
	default:
		logging.Error(loggerFromContext(r, logger), "request failed", err)
		writeError(w, r, http.StatusBadGateway, "upstream unavailable", logger)
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
