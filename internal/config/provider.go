package config

import "strings"

// ProviderConfig selects and tunes the upstream season data source.
type ProviderConfig struct {
	Name        string
	BaseURL     string
	CSVPath     string
	FallbackCSV string // empty disables the fallback wrapper
	Season      int
	MinInterval Duration
	MaxAttempts int
}

func loadProvider() ProviderConfig {
	return ProviderConfig{
		Name:        strings.ToLower(strings.TrimSpace(envOrDefault(envProvider, defaultProvider))),
		BaseURL:     envOrDefault(envStatsAPIURL, defaultStatsAPIURL),
		CSVPath:     envOrDefault(envCSVPath, defaultCSVPath),
		FallbackCSV: envOrDefault(envFallbackCSV, ""),
		Season:      intEnvOrDefault(envBBRefSeason, defaultBBRefSeason),
		MinInterval: durationEnvOrDefault(envProviderRate, defaultProviderRate),
		MaxAttempts: intEnvOrDefault(envProviderTries, defaultProviderTries),
	}
}
