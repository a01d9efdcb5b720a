package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

func simpleSnapshot(at time.Time, player string) RosterSnapshot {
	return RosterSnapshot{
		TakenAt:  at,
		Source:   "test",
		RawCount: 1,
		Names:    []string{player},
		Rows: []roster.SeasonRow{
			{Player: player, Team: "BOS", Minutes: "30", Stats: map[string]float64{roster.StatPoints: 20}},
		},
	}
}

func writeSnapshot(t *testing.T, w *Writer, snap RosterSnapshot) bool {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil")
	}
	wrote, err := w.WriteRosterSnapshot(snap)
	if err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	return wrote
}

func requireSnapshotExists(t *testing.T, w *Writer, at time.Time) {
	t.Helper()
	path := RosterSnapshotPath(w.BasePath(), at.UTC().Format("20060102T150405Z"))
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected snapshot %s to be written: %v", path, err)
	}
}

func assertStampsEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("stamps length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("stamps mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
