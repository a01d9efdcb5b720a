package testutil

import (
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
	"github.com/preston-bernstein/nba-insights-service/internal/timeutil"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteSnapshot writes a roster snapshot of SampleRows taken at the given time.
func WriteSnapshot(t *testing.T, w *snapshots.Writer, at time.Time) {
	t.Helper()
	if err := writeSnapshotPayload(w, at); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", at, err)
	}
}

func writeSnapshotPayload(w *snapshots.Writer, at time.Time) error {
	if w == nil {
		return errors.New("nil snapshot writer")
	}
	rows := SampleRows()
	_, err := w.WriteRosterSnapshot(snapshots.RosterSnapshot{
		TakenAt:  at,
		Source:   "test",
		RawCount: len(rows),
		Names:    []string{at.UTC().Format(time.RFC3339)},
		Rows:     rows,
	})
	return err
}

// SnapshotPath returns the expected file path for a snapshot taken at the given time.
func SnapshotPath(w *snapshots.Writer, at time.Time) string {
	return snapshots.RosterSnapshotPath(w.BasePath(), timeutil.FormatStamp(at))
}
