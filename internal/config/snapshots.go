package config

// SnapshotConfig controls where clean roster snapshots live.
type SnapshotConfig struct {
	Dir       string
	Retention int // snapshots kept on disk
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir:       envOrDefault(envSnapshotDir, defaultSnapshotDir),
		Retention: intEnvOrDefault(envSnapshotKeep, defaultSnapshotKeep),
	}
}
