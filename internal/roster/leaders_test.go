package roster

import (
	"errors"
	"testing"
)

func statRow(player string, stats map[string]float64) SeasonRow {
	return SeasonRow{Player: player, Team: "BOS", Minutes: "30", Stats: stats}
}

func TestLeadersSortsDescendingAndLimits(t *testing.T) {
	rows := []SeasonRow{
		statRow("A", map[string]float64{StatPoints: 10}),
		statRow("B", map[string]float64{StatPoints: 30}),
		statRow("C", map[string]float64{StatPoints: 20}),
		statRow("D", map[string]float64{StatAssists: 9}),
	}
	got, err := Leaders(rows, "Points", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Player != "B" || got[1].Player != "C" || got[0].Rank != 1 || got[1].Rank != 2 {
		t.Fatalf("unexpected leaders %+v", got)
	}
}

func TestLeadersTiesKeepInputOrder(t *testing.T) {
	rows := []SeasonRow{
		statRow("A", map[string]float64{StatBlocks: 1}),
		statRow("B", map[string]float64{StatBlocks: 2}),
		statRow("C", map[string]float64{StatBlocks: 2}),
	}
	got, _ := Leaders(rows, "blk", 0)
	if got[0].Player != "B" || got[1].Player != "C" || got[2].Player != "A" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestLeadersDefaultLimit(t *testing.T) {
	rows := make([]SeasonRow, 0, 15)
	for i := 0; i < 15; i++ {
		rows = append(rows, statRow(string(rune('A'+i)), map[string]float64{StatSteals: float64(i)}))
	}
	got, _ := Leaders(rows, "Steals", 0)
	if len(got) != DefaultLeaderLimit {
		t.Fatalf("expected %d leaders, got %d", DefaultLeaderLimit, len(got))
	}
}

func TestLeadersUnknownCategory(t *testing.T) {
	if _, err := Leaders(nil, "Dunks", 5); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestLookupCategory(t *testing.T) {
	c, err := LookupCategory(" 3p percentage ")
	if err != nil || c.Stat != StatThreePct {
		t.Fatalf("unexpected category %+v err=%v", c, err)
	}
	if len(Categories()) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(Categories()))
	}
}
