package config

// TeamsConfig overrides the built-in team directory.
type TeamsConfig struct {
	File     string // optional YAML file
	LogoBase string // empty keeps the built-in logo host
}

func loadTeams() TeamsConfig {
	return TeamsConfig{
		File:     envOrDefault(envTeamsFile, ""),
		LogoBase: envOrDefault(envTeamLogoBase, ""),
	}
}
