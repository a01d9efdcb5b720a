package roster

import (
	"sort"
	"strings"
)

// DefaultPositionLimit is how many players each position keeps when n <= 0.
const DefaultPositionLimit = 25

// PositionPlayer is one point of the assists against points scatter.
type PositionPlayer struct {
	Player  string  `json:"player"`
	Team    string  `json:"team"`
	Value   float64 `json:"value"`
	Points  float64 `json:"points"`
	Assists float64 `json:"assists"`
}

// PositionGroup holds the top players at one position.
type PositionGroup struct {
	Position string           `json:"position"`
	Players  []PositionPlayer `json:"players"`
}

// TopByPosition keeps the n highest rows by the category's stat within each
// single position, highest first with ties in input order. Rows listing
// several positions ("PF-C") or none, and rows missing the stat, are left
// out. Groups are ordered by position.
func TopByPosition(rows []SeasonRow, category string, n int) ([]PositionGroup, error) {
	cat, err := LookupCategory(category)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultPositionLimit
	}

	byPos := make(map[string][]PositionPlayer)
	for _, row := range rows {
		pos := strings.TrimSpace(row.Position)
		if pos == "" || strings.Contains(pos, "-") {
			continue
		}
		v, ok := row.Stat(cat.Stat)
		if !ok {
			continue
		}
		pts, _ := row.Stat(StatPoints)
		ast, _ := row.Stat(StatAssists)
		byPos[pos] = append(byPos[pos], PositionPlayer{Player: row.Player, Team: row.Team, Value: v, Points: pts, Assists: ast})
	}

	groups := make([]PositionGroup, 0, len(byPos))
	for pos, players := range byPos {
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].Value > players[j].Value
		})
		if len(players) > n {
			players = players[:n]
		}
		groups = append(groups, PositionGroup{Position: pos, Players: players})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Position < groups[j].Position })
	return groups, nil
}
