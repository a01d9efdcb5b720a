package roster

import (
	"errors"
	"sort"
	"strings"
)

// DefaultLeaderLimit is how many leaders are returned when limit <= 0.
const DefaultLeaderLimit = 10

// ErrUnknownCategory is returned for categories outside the leaderboard set.
var ErrUnknownCategory = errors.New("roster: unknown category")

// Category names a leaderboard and the stat column behind it.
type Category struct {
	Name string `json:"name"`
	Stat string `json:"stat"`
}

var categories = []Category{
	{Name: "Points", Stat: StatPoints},
	{Name: "Assists", Stat: StatAssists},
	{Name: "Rebounds", Stat: StatRebounds},
	{Name: "Steals", Stat: StatSteals},
	{Name: "Blocks", Stat: StatBlocks},
	{Name: "FG Percentage", Stat: StatFGPct},
	{Name: "3P Percentage", Stat: StatThreePct},
	{Name: "FT Percentage", Stat: StatFTPct},
}

// Categories lists the supported leaderboards.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory matches a display name or a stat code, ignoring case.
func LookupCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) || strings.EqualFold(c.Stat, name) {
			return c, nil
		}
	}
	return Category{}, ErrUnknownCategory
}

// Leader is one leaderboard entry.
type Leader struct {
	Rank   int     `json:"rank"`
	Player string  `json:"player"`
	Team   string  `json:"team"`
	Value  float64 `json:"value"`
}

// Leaders ranks rows by the category's stat, highest first. Rows without the
// stat are skipped and equal values keep input order.
func Leaders(rows []SeasonRow, category string, limit int) ([]Leader, error) {
	cat, err := LookupCategory(category)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLeaderLimit
	}

	leaders := make([]Leader, 0, len(rows))
	for _, row := range rows {
		v, ok := row.Stat(cat.Stat)
		if !ok {
			continue
		}
		leaders = append(leaders, Leader{Player: row.Player, Team: row.Team, Value: v})
	}
	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].Value > leaders[j].Value
	})
	if len(leaders) > limit {
		leaders = leaders[:limit]
	}
	for i := range leaders {
		leaders[i].Rank = i + 1
	}
	return leaders, nil
}
