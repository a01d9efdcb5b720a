package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	domainplayers "github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/logging"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

const maxLeaderLimit = 100

// NamesResponse is the payload of /players.
type NamesResponse struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

// ImageResponse is the payload of /players/{name}/image.
type ImageResponse struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// LeadersResponse is the payload of /leaders.
type LeadersResponse struct {
	Category roster.Category `json:"category"`
	Leaders  []roster.Leader `json:"leaders"`
}

// PositionsResponse is the payload of /leaders/positions.
type PositionsResponse struct {
	Category  roster.Category        `json:"category"`
	Limit     int                    `json:"limit"`
	Positions []roster.PositionGroup `json:"positions"`
}

// Players lists the name directory.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	names, err := h.players.Names()
	if err != nil {
		writeServiceError(w, r, err, domainplayers.Resolution{}, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, NamesResponse{Count: len(names), Names: names}, h.logger)
}

// PlayerRoutes dispatches /players/resolve, /players/{name}, /players/{name}/image
// and /players/{name}/shots.
func (h *Handler) PlayerRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	rest := strings.TrimPrefix(r.URL.EscapedPath(), "/players/")
	if rest == "resolve" {
		h.Resolve(w, r)
		return
	}
	var image, shots bool
	if trimmed, ok := strings.CutSuffix(rest, "/image"); ok {
		rest, image = trimmed, true
	} else if trimmed, ok := strings.CutSuffix(rest, "/shots"); ok {
		rest, shots = trimmed, true
	}
	name, err := url.PathUnescape(rest)
	if err != nil || strings.TrimSpace(name) == "" || strings.Contains(rest, "/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player name", h.logger)
		return
	}
	if image {
		h.playerImage(w, r, name)
		return
	}
	if shots {
		h.playerShots(w, r, name)
		return
	}
	h.playerProfile(w, r, name)
}

// Resolve maps ?q= to a canonical player name.
func (h *Handler) Resolve(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	query := r.URL.Query().Get("q")
	res, err := h.players.Resolve(query)
	if err != nil {
		h.logMiss(r, query, err)
		writeServiceError(w, r, err, res, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

func (h *Handler) playerProfile(w nethttp.ResponseWriter, r *nethttp.Request, name string) {
	profile, res, err := h.players.Profile(r.Context(), name)
	if err != nil {
		h.logMiss(r, name, err)
		writeServiceError(w, r, err, res, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, profile, h.logger)
}

func (h *Handler) playerImage(w nethttp.ResponseWriter, r *nethttp.Request, name string) {
	img, res, err := h.players.ImageURL(r.Context(), name)
	if err != nil {
		h.logMiss(r, name, err)
		writeServiceError(w, r, err, res, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, ImageResponse{Name: res.Name, ImageURL: img}, h.logger)
}

func (h *Handler) playerShots(w nethttp.ResponseWriter, r *nethttp.Request, name string) {
	chart, res, err := h.players.Shots(r.Context(), name, r.URL.Query().Get("season"))
	if err != nil {
		h.logMiss(r, name, err)
		writeServiceError(w, r, err, res, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, chart, h.logger)
}

// Compare resolves ?p1= and ?p2= then places them side by side.
func (h *Handler) Compare(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	q := r.URL.Query()
	cmp, err := h.players.Compare(q.Get("p1"), q.Get("p2"))
	if err != nil {
		writeServiceError(w, r, err, domainplayers.Resolution{}, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, cmp, h.logger)
}

// Leaders returns the top performers for ?category= (default Points).
func (h *Handler) Leaders(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	category, limit, ok := h.rankingQuery(w, r, roster.DefaultLeaderLimit)
	if !ok {
		return
	}
	cat, leaders, err := h.players.Leaders(category, limit)
	if err != nil {
		writeServiceError(w, r, err, domainplayers.Resolution{}, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, LeadersResponse{Category: cat, Leaders: leaders}, h.logger)
}

// Positions returns the top ?limit= players (default 25) at each single
// position ranked by ?category=, with points and assists for each.
func (h *Handler) Positions(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	category, limit, ok := h.rankingQuery(w, r, roster.DefaultPositionLimit)
	if !ok {
		return
	}
	cat, groups, err := h.players.Positions(category, limit)
	if err != nil {
		writeServiceError(w, r, err, domainplayers.Resolution{}, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, PositionsResponse{Category: cat, Limit: limit, Positions: groups}, h.logger)
}

func (h *Handler) rankingQuery(w nethttp.ResponseWriter, r *nethttp.Request, defaultLimit int) (string, int, bool) {
	q := r.URL.Query()
	category := q.Get("category")
	if strings.TrimSpace(category) == "" {
		category = roster.StatPoints
	}
	limit := defaultLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLeaderLimit {
			writeError(w, r, nethttp.StatusBadRequest, "limit must be between 1 and 100", h.logger)
			return "", 0, false
		}
		limit = n
	}
	return category, limit, true
}

func (h *Handler) logMiss(r *nethttp.Request, query string, err error) {
	logging.Info(loggerFromContext(r, h.logger), "player lookup missed",
		slog.String(logging.FieldQuery, query),
		slog.String("reason", err.Error()),
	)
}
