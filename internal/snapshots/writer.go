package snapshots

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/timeutil"
)

const defaultRetention = 5

// Writer persists roster snapshots and the manifest, keeping the newest few.
type Writer struct {
	basePath  string
	retention int
	now       func() time.Time
}

// NewWriter constructs a writer rooted at basePath that keeps retention snapshots.
func NewWriter(basePath string, retention int) *Writer {
	if retention <= 0 {
		retention = defaultRetention
	}
	return &Writer{
		basePath:  basePath,
		retention: retention,
		now:       time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteRosterSnapshot stores snap unless its content matches the latest
// snapshot, in which case only the manifest refresh time moves. It returns
// whether a new file was written.
func (w *Writer) WriteRosterSnapshot(snap RosterSnapshot) (bool, error) {
	if w == nil {
		return false, errors.New("snapshot writer not configured")
	}
	if snap.TakenAt.IsZero() {
		snap.TakenAt = w.now()
	}
	snap.TakenAt = snap.TakenAt.UTC()
	sum, err := Checksum(snap.Rows, snap.Names)
	if err != nil {
		return false, err
	}
	snap.Checksum = sum

	m, _ := readManifest(ManifestPath(w.basePath), w.retention)
	if m.Roster.Checksum == sum && m.Roster.Latest != "" {
		if _, statErr := os.Stat(RosterSnapshotPath(w.basePath, m.Roster.Latest)); statErr == nil {
			m.Roster.LastRefreshed = w.now().UTC()
			return false, writeManifest(w.basePath, m)
		}
	}

	stamp := timeutil.FormatStamp(snap.TakenAt)
	target := RosterSnapshotPath(w.basePath, stamp)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return false, err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, err
	}
	if err := os.Rename(tmp, target); err != nil {
		return false, err
	}

	stamps, err := listStamps(w.basePath)
	if err != nil {
		return true, err
	}
	kept := w.prune(stamps)

	m.Retention.RosterCount = w.retention
	m.Roster.Stamps = kept
	m.Roster.Latest = stamp
	m.Roster.Checksum = sum
	m.Roster.LastRefreshed = w.now().UTC()
	return true, writeManifest(w.basePath, m)
}

// prune removes all but the newest retention stamps and returns the survivors.
func (w *Writer) prune(stamps []string) []string {
	if len(stamps) <= w.retention {
		return stamps
	}
	drop := stamps[:len(stamps)-w.retention]
	for _, s := range drop {
		_ = os.Remove(RosterSnapshotPath(w.basePath, s))
	}
	return append([]string(nil), stamps[len(stamps)-w.retention:]...)
}

// listStamps returns the snapshot stamps on disk, oldest first.
func listStamps(basePath string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(basePath, rosterDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var stamps []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		stamp := strings.TrimSuffix(e.Name(), ".json")
		if _, err := timeutil.ParseStamp(stamp); err != nil {
			continue
		}
		stamps = append(stamps, stamp)
	}
	sort.Strings(stamps)
	return stamps, nil
}
