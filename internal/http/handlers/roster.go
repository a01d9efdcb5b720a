package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	domainplayers "github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

// RosterResponse is the payload of /roster.
type RosterResponse struct {
	RefreshedAt time.Time          `json:"refreshedAt"`
	Source      string             `json:"source"`
	Count       int                `json:"count"`
	Players     []roster.SeasonRow `json:"players"`
	Report      roster.Report      `json:"report"`
}

// RawCountResponse compares the table before and after normalization.
type RawCountResponse struct {
	Raw     int `json:"raw"`
	Clean   int `json:"clean"`
	Dropped int `json:"dropped"`
}

// Roster returns the clean table with an ETag over its encoded body.
func (h *Handler) Roster(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	state, err := h.players.Roster()
	if err != nil {
		writeServiceError(w, r, err, domainplayers.Resolution{}, h.logger)
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(RosterResponse{
		RefreshedAt: state.RefreshedAt,
		Source:      state.Source,
		Count:       len(state.Rows),
		Players:     state.Rows,
		Report:      state.Report,
	}); err != nil {
		writeServiceError(w, r, err, domainplayers.Resolution{}, h.logger)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(buf.Bytes()))
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(nethttp.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// RawCount reports how many rows normalization removed.
func (h *Handler) RawCount(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	state, err := h.players.Roster()
	if err != nil {
		writeServiceError(w, r, err, domainplayers.Resolution{}, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, RawCountResponse{
		Raw:     state.RawCount,
		Clean:   len(state.Rows),
		Dropped: state.RawCount - len(state.Rows),
	}, h.logger)
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
