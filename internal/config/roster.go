package config

// RosterConfig carries the normalization and name matching knobs.
type RosterConfig struct {
	MinMinutes     float64
	TotalMarker    string
	InvalidMinutes string
	MatchCutoff    float64
	MatchFold      bool
}

func loadRoster() RosterConfig {
	cutoff := floatEnvOrDefault(envMatchCutoff, defaultMatchCutoff)
	if cutoff > 1 {
		cutoff = defaultMatchCutoff
	}
	return RosterConfig{
		MinMinutes:     floatEnvOrDefault(envMinMinutes, defaultMinMinutes),
		TotalMarker:    envOrDefault(envTotalMarker, defaultTotalMarker),
		InvalidMinutes: envOrDefault(envInvalidPolicy, defaultInvalidPolicy),
		MatchCutoff:    cutoff,
		MatchFold:      boolEnvOrDefault(envMatchFold, false),
	}
}
