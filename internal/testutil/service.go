package testutil

import (
	"testing"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
	"github.com/preston-bernstein/nba-insights-service/internal/store"
)

// NewRosterStore returns an in-memory store holding the normalized form of rows.
// Names default to the clean players when names is empty.
func NewRosterStore(t *testing.T, rows []roster.SeasonRow, names []string) *store.MemoryStore {
	t.Helper()
	n, err := roster.NewNormalizer(roster.DefaultOptions())
	if err != nil {
		t.Fatalf("normalizer: %v", err)
	}
	res, err := n.Normalize(rows)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(names) == 0 {
		names = roster.Names(res.Rows)
	}
	ms := store.NewMemoryStore()
	ms.SetRoster(store.RosterState{
		Rows:        res.Rows,
		Names:       names,
		RawCount:    len(rows),
		Report:      res.Report,
		RefreshedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Source:      "test",
	})
	return ms
}

// NewLiveStore returns an in-memory store holding only live games.
func NewLiveStore(g []games.LiveGame, at time.Time) *store.MemoryStore {
	ms := store.NewMemoryStore()
	if len(g) > 0 {
		ms.SetLiveGames(g, at)
	}
	return ms
}
