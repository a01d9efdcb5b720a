package handlers

import (
	nethttp "net/http"
	"net/url"
	"strings"
)

// Teams lists the team directory.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.teams.Teams(), h.logger)
}

// TeamByAbbreviation returns the full name and logo for /teams/{abbr}.
func (h *Handler) TeamByAbbreviation(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	abbr, err := url.PathUnescape(strings.TrimPrefix(r.URL.EscapedPath(), "/teams/"))
	if err != nil || strings.TrimSpace(abbr) == "" || strings.Contains(abbr, "/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team abbreviation", h.logger)
		return
	}
	team, ok := h.teams.TeamByAbbreviation(abbr)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}
