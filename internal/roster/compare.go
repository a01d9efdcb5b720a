package roster

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrPlayerNotFound is returned when a compared player is not in the table.
var ErrPlayerNotFound = errors.New("roster: player not found")

// ComparisonStats are the stats placed side by side.
var ComparisonStats = []string{StatPoints, StatAssists, StatRebounds, StatSteals, StatBlocks}

const quintiles = 5

// StatLine is one stat for one player with its quintile (1 lowest, 5 highest) across the table.
type StatLine struct {
	Stat     string  `json:"stat"`
	Value    float64 `json:"value"`
	Quintile int     `json:"quintile"`
}

// PlayerLine is one side of a comparison.
type PlayerLine struct {
	Player string     `json:"player"`
	Team   string     `json:"team"`
	Stats  []StatLine `json:"stats"`
}

// Comparison places two players side by side.
type Comparison struct {
	Players []PlayerLine `json:"players"`
}

// Compare builds quintile profiles for players a and b over rows.
func Compare(rows []SeasonRow, a, b string) (Comparison, error) {
	rowA, ok := Find(rows, a)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, a)
	}
	rowB, ok := Find(rows, b)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, b)
	}

	edges := make(map[string][]float64, len(ComparisonStats))
	for _, stat := range ComparisonStats {
		edges[stat] = quantileEdges(column(rows, stat), quintiles)
	}

	line := func(row SeasonRow) PlayerLine {
		pl := PlayerLine{Player: row.Player, Team: row.Team}
		for _, stat := range ComparisonStats {
			v, ok := row.Stat(stat)
			if !ok {
				continue
			}
			pl.Stats = append(pl.Stats, StatLine{Stat: stat, Value: v, Quintile: bucket(edges[stat], v)})
		}
		return pl
	}

	return Comparison{Players: []PlayerLine{line(rowA), line(rowB)}}, nil
}

func column(rows []SeasonRow, stat string) []float64 {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		if v, ok := row.Stat(stat); ok && !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	sort.Float64s(values)
	return values
}

// quantileEdges returns q+1 interpolated quantile edges of sorted values with duplicates removed.
func quantileEdges(sorted []float64, q int) []float64 {
	if len(sorted) == 0 {
		return nil
	}
	edges := make([]float64, 0, q+1)
	for k := 0; k <= q; k++ {
		pos := float64(k) / float64(q) * float64(len(sorted)-1)
		lo := int(math.Floor(pos))
		hi := int(math.Ceil(pos))
		v := sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
		if len(edges) > 0 && edges[len(edges)-1] == v {
			continue
		}
		edges = append(edges, v)
	}
	return edges
}

// bucket places v in (edges[i-1], edges[i]], with the lowest edge itself in bucket 1.
func bucket(edges []float64, v float64) int {
	if len(edges) < 2 {
		return 1
	}
	for i := 1; i < len(edges); i++ {
		if v <= edges[i] {
			return i
		}
	}
	return len(edges) - 1
}
