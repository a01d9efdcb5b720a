package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-insights-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. A nil admin handler leaves
// the admin routes unregistered.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/roster", handler.Roster)
	mux.HandleFunc("/roster/raw-count", handler.RawCount)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/resolve", handler.Resolve)
	mux.HandleFunc("/players/", handler.PlayerRoutes)
	mux.HandleFunc("/compare", handler.Compare)
	mux.HandleFunc("/leaders", handler.Leaders)
	mux.HandleFunc("/leaders/positions", handler.Positions)
	mux.HandleFunc("/games/live", handler.LiveGames)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/", handler.TeamByAbbreviation)
	if admin != nil {
		mux.HandleFunc("/admin/refresh", admin.Refresh)
	}
	return mux
}
