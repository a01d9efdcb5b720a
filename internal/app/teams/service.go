package teams

import "github.com/preston-bernstein/nba-insights-service/internal/domain/teams"

// Directory resolves team abbreviations.
type Directory interface {
	Lookup(abbr string) (teams.Team, bool)
	All() []teams.Team
}

// Service answers team lookups.
type Service struct {
	dir Directory
}

// NewService constructs a Service over the provided directory.
func NewService(dir Directory) *Service {
	return &Service{dir: dir}
}

// Teams returns every known team.
func (s *Service) Teams() []teams.Team {
	return s.dir.All()
}

// TeamByAbbreviation returns a single team if present.
func (s *Service) TeamByAbbreviation(abbr string) (teams.Team, bool) {
	return s.dir.Lookup(abbr)
}
