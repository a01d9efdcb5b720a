package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	AdminToken   string
	Provider     ProviderConfig
	Roster       RosterConfig
	Live         LiveConfig
	Teams        TeamsConfig
	Shots        ShotsConfig
	Snapshots    SnapshotConfig
	Logging      LoggingConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		AdminToken:   envOrDefault(envAdminToken, ""),
		Provider:     loadProvider(),
		Roster:       loadRoster(),
		Live:         loadLive(),
		Teams:        loadTeams(),
		Shots:        loadShots(),
		Snapshots:    loadSnapshots(),
		Logging:      loadLogging(),
		Metrics:      loadMetrics(),
	}
}
