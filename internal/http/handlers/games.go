package handlers

import nethttp "net/http"

// LiveGames returns the live feed with statuses derived at request time.
func (h *Handler) LiveGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	resp := h.games.Live()
	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Info("served live games", "count", len(resp.Games))
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}
