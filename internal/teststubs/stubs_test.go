package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nba-insights-service/internal/roster"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

func TestStubProviderClosesNotifyOnceAndCopiesRows(t *testing.T) {
	p := &StubProvider{
		Rows:   []roster.SeasonRow{{Player: "A", Stats: map[string]float64{"PTS": 1}}},
		Notify: make(chan struct{}),
	}
	rows, err := p.FetchSeasonRows(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	rows[0].Stats["PTS"] = 99
	if _, err := p.FetchSeasonRows(context.Background()); err != nil {
		t.Fatal(err)
	}
	if p.Rows[0].Stats["PTS"] != 1 {
		t.Fatalf("expected stub rows to be copied")
	}
	if p.Calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", p.Calls.Load())
	}
	select {
	case <-p.Notify:
	default:
		t.Fatalf("expected notify to be closed")
	}

	p.SetErr(errors.New("boom"))
	if _, err := p.FetchSeasonRows(context.Background()); err == nil {
		t.Fatalf("expected configured error")
	}
}

func TestStubSnapshotStoreAndWriter(t *testing.T) {
	store := &StubSnapshotStore{}
	if _, err := store.LoadLatestRoster(); !errors.Is(err, snapshots.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}

	w := &StubSnapshotWriter{}
	if _, ok := w.Last(); ok {
		t.Fatalf("expected no snapshot yet")
	}
	if _, err := w.WriteRosterSnapshot(snapshots.RosterSnapshot{Source: "x"}); err != nil {
		t.Fatal(err)
	}
	if last, ok := w.Last(); !ok || last.Source != "x" || w.Count() != 1 {
		t.Fatalf("unexpected writer state")
	}
}
