package snapshots

import (
	"encoding/json"
	"errors"
	"os"
)

// ErrNoSnapshot is returned when nothing has been written yet.
var ErrNoSnapshot = errors.New("no roster snapshot")

// Store defines how snapshots are loaded.
type Store interface {
	LoadLatestRoster() (RosterSnapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadLatestRoster reads the snapshot the manifest names as latest. Without a
// usable manifest it falls back to the newest file on disk.
func (s *FSStore) LoadLatestRoster() (RosterSnapshot, error) {
	if s == nil {
		return RosterSnapshot{}, errors.New("snapshot store not configured")
	}
	stamp := ""
	if m, err := readManifest(ManifestPath(s.basePath), 0); err == nil {
		stamp = m.Roster.Latest
	}
	if stamp == "" {
		stamps, err := listStamps(s.basePath)
		if err != nil {
			return RosterSnapshot{}, err
		}
		if len(stamps) == 0 {
			return RosterSnapshot{}, ErrNoSnapshot
		}
		stamp = stamps[len(stamps)-1]
	}

	var snap RosterSnapshot
	if err := decodeFile(RosterSnapshotPath(s.basePath, stamp), &snap); err != nil {
		if os.IsNotExist(err) {
			return RosterSnapshot{}, ErrNoSnapshot
		}
		return RosterSnapshot{}, err
	}
	return snap, nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
