package providers

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

// Column names shared by per-game season tables.
const (
	ColumnPlayer   = "Player"
	ColumnTeam     = "Tm"
	ColumnTeamAlt  = "Team"
	ColumnPosition = "Pos"
	ColumnMinutes  = "MP"
)

// multiTeamCode matches the "2TM", "3TM" season-total codes newer exports use.
var multiTeamCode = regexp.MustCompile(`^\d+TM$`)

var ignoredColumns = map[string]struct{}{
	"Rk":                {},
	"Awards":            {},
	"Player-additional": {},
	"index":             {},
}

// RowFromCells maps one table row, keyed by column header, into a SeasonRow.
// Minutes stay raw. Stat cells that do not parse as numbers are left out.
func RowFromCells(cells map[string]string) roster.SeasonRow {
	row := roster.SeasonRow{
		Player:   strings.TrimSpace(cells[ColumnPlayer]),
		Team:     strings.TrimSpace(cells[ColumnTeam]),
		Position: strings.TrimSpace(cells[ColumnPosition]),
		Minutes:  strings.TrimSpace(cells[ColumnMinutes]),
	}
	if row.Team == "" {
		row.Team = strings.TrimSpace(cells[ColumnTeamAlt])
	}
	row.Team = TeamCode(row.Team)

	for key, raw := range cells {
		if !isStatColumn(key) {
			continue
		}
		v, ok := parseStat(raw)
		if !ok {
			continue
		}
		if row.Stats == nil {
			row.Stats = make(map[string]float64)
		}
		row.Stats[key] = v
	}
	return row
}

// TeamCode maps multi-team season-total codes to roster.DefaultTotalMarker.
// Other codes pass through unchanged.
func TeamCode(code string) string {
	if multiTeamCode.MatchString(strings.ToUpper(code)) {
		return roster.DefaultTotalMarker
	}
	return code
}

func isStatColumn(key string) bool {
	switch key {
	case "", ColumnPlayer, ColumnTeam, ColumnTeamAlt, ColumnPosition, ColumnMinutes:
		return false
	}
	_, ignored := ignoredColumns[key]
	return !ignored
}

func parseStat(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	// Percentages are published as ".512".
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
