package store

import (
	"slices"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

// RosterState is everything one refresh produced.
type RosterState struct {
	Rows        []roster.SeasonRow
	Names       []string
	RawCount    int
	Report      roster.Report
	RefreshedAt time.Time
	Source      string
}

// MemoryStore keeps the latest roster and live games in memory. Readers get
// copies of the slices; rows are shared and must be treated as read-only.
type MemoryStore struct {
	mu        sync.RWMutex
	roster    RosterState
	hasRoster bool
	live      []games.LiveGame
	liveAt    time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetRoster replaces the stored roster.
func (s *MemoryStore) SetRoster(state RosterState) {
	state.Rows = slices.Clone(state.Rows)
	state.Names = slices.Clone(state.Names)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = state
	s.hasRoster = true
}

// Roster returns the stored roster; ok is false before the first SetRoster.
func (s *MemoryStore) Roster() (RosterState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.roster
	state.Rows = slices.Clone(state.Rows)
	state.Names = slices.Clone(state.Names)
	return state, s.hasRoster
}

// SetLiveGames replaces the live game list.
func (s *MemoryStore) SetLiveGames(g []games.LiveGame, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live = slices.Clone(g)
	s.liveAt = at
}

// LiveGames returns the live games and when they were loaded.
func (s *MemoryStore) LiveGames() ([]games.LiveGame, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]games.LiveGame, len(s.live))
	copy(out, s.live)
	return out, s.liveAt
}
