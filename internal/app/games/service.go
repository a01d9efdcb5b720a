package games

import (
	"time"

	domaingames "github.com/preston-bernstein/nba-insights-service/internal/domain/games"
)

// Store defines how live games are read.
type Store interface {
	LiveGames() ([]domaingames.LiveGame, time.Time)
}

// Service derives live game statuses at request time.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Live returns the stored games with status and countdown computed for now.
func (s *Service) Live() domaingames.LiveResponse {
	games, _ := s.store.LiveGames()
	return domaingames.NewLiveResponse(s.now().UTC(), games)
}

// LoadedAt reports when the live games were last loaded.
func (s *Service) LoadedAt() time.Time {
	_, at := s.store.LiveGames()
	return at
}
