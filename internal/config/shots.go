package config

import "strings"

// Shot log sources.
const (
	ShotsSourceFixture  = "fixture"
	ShotsSourceNBAStats = "nbastats"
	ShotsSourceOff      = "off"
)

// ShotsConfig points the shot log endpoint at an upstream.
type ShotsConfig struct {
	Source        string
	BaseURL       string // empty keeps the public stats host
	DefaultSeason string
}

func loadShots() ShotsConfig {
	source := strings.ToLower(strings.TrimSpace(envOrDefault(envShotsSource, defaultShotsSource)))
	switch source {
	case ShotsSourceFixture, ShotsSourceNBAStats, ShotsSourceOff:
	default:
		source = defaultShotsSource
	}
	return ShotsConfig{
		Source:        source,
		BaseURL:       envOrDefault(envNBAStatsURL, ""),
		DefaultSeason: envOrDefault(envShotsSeason, defaultShotsSeason),
	}
}
