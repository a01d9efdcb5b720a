// Package roster cleans per-team season tables and answers questions over the clean table.
package roster

import (
	"maps"
	"math"
	"strconv"
	"strings"
)

// Stat column codes as they appear in per-game season tables.
const (
	StatPoints    = "PTS"
	StatAssists   = "AST"
	StatRebounds  = "TRB"
	StatSteals    = "STL"
	StatBlocks    = "BLK"
	StatTurnovers = "TOV"
	StatFGPct     = "FG%"
	StatThreePct  = "3P%"
	StatFTPct     = "FT%"
	StatAge       = "Age"
	StatGames     = "G"
	StatOffReb    = "ORB"
	StatDefReb    = "DRB"
	StatTwoPct    = "2P%"
)

// SeasonRow is one player's per-game line for one team (or the season total).
// Minutes is kept as received; it is only interpreted during normalization.
type SeasonRow struct {
	Player   string             `json:"player"`
	Team     string             `json:"team"`
	Position string             `json:"position,omitempty"`
	Minutes  string             `json:"minutes"`
	Stats    map[string]float64 `json:"stats,omitempty"`
}

// MinutesPlayed parses Minutes. ok is false for empty, non-numeric and NaN values.
func (r SeasonRow) MinutesPlayed() (float64, bool) {
	raw := strings.TrimSpace(r.Minutes)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Stat returns the named stat when present.
func (r SeasonRow) Stat(code string) (float64, bool) {
	v, ok := r.Stats[code]
	return v, ok
}

// Clone returns a copy that shares no maps with r.
func (r SeasonRow) Clone() SeasonRow {
	r.Stats = maps.Clone(r.Stats)
	return r
}

// Find returns the first row for the exact player name.
func Find(rows []SeasonRow, player string) (SeasonRow, bool) {
	for _, row := range rows {
		if row.Player == player {
			return row.Clone(), true
		}
	}
	return SeasonRow{}, false
}

// Names lists distinct player names in first-seen order.
func Names(rows []SeasonRow) []string {
	seen := make(map[string]struct{}, len(rows))
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.Player]; ok {
			continue
		}
		seen[row.Player] = struct{}{}
		names = append(names, row.Player)
	}
	return names
}
