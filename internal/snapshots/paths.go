package snapshots

import (
	"fmt"
	"path/filepath"
)

const (
	rosterDir    = "roster"
	manifestFile = "manifest.json"
)

// RosterSnapshotPath builds the path to the roster snapshot with the given stamp.
func RosterSnapshotPath(basePath, stamp string) string {
	return filepath.Join(basePath, rosterDir, fmt.Sprintf("%s.json", stamp))
}

// ManifestPath returns the manifest location under basePath.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFile)
}
