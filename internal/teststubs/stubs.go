// Package teststubs holds concurrency-safe test doubles shared by the
// poller and server tests.
package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

var errNotFound = errors.New("not found")

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	mu       sync.Mutex
	Rows     []roster.SeasonRow
	Names    []string
	Err      error
	NamesErr error
	Calls    atomic.Int32
	Notify   chan struct{}
}

// SetErr swaps the error returned by FetchSeasonRows.
func (s *StubProvider) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// FetchSeasonRows returns configured rows and error while tracking calls.
func (s *StubProvider) FetchSeasonRows(ctx context.Context) ([]roster.SeasonRow, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]roster.SeasonRow, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Clone()
	}
	return out, nil
}

// FetchPlayerNames returns configured names.
func (s *StubProvider) FetchPlayerNames(ctx context.Context) ([]string, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Names...), s.NamesErr
}

// FetchProfile always reports not found.
func (s *StubProvider) FetchProfile(context.Context, string) (players.Profile, error) {
	return players.Profile{}, errNotFound
}

// FetchImageURL always reports not found.
func (s *StubProvider) FetchImageURL(context.Context, string) (string, error) {
	return "", errNotFound
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Snapshot *snapshots.RosterSnapshot
	LoadErr  error
	Loads    atomic.Int32
}

// LoadLatestRoster returns the configured snapshot.
func (s *StubSnapshotStore) LoadLatestRoster() (snapshots.RosterSnapshot, error) {
	s.Loads.Add(1)
	if s.LoadErr != nil {
		return snapshots.RosterSnapshot{}, s.LoadErr
	}
	if s.Snapshot == nil {
		return snapshots.RosterSnapshot{}, snapshots.ErrNoSnapshot
	}
	return *s.Snapshot, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written []snapshots.RosterSnapshot
	Err     error
}

// WriteRosterSnapshot records the snapshot or returns the configured error.
func (s *StubSnapshotWriter) WriteRosterSnapshot(snap snapshots.RosterSnapshot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	s.Written = append(s.Written, snap)
	return true, nil
}

// Count returns how many snapshots were recorded.
func (s *StubSnapshotWriter) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Written)
}

// Last returns the most recent snapshot.
func (s *StubSnapshotWriter) Last() (snapshots.RosterSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Written) == 0 {
		return snapshots.RosterSnapshot{}, false
	}
	return s.Written[len(s.Written)-1], true
}

// StubLiveLoader is a test double for the live game loader.
type StubLiveLoader struct {
	Games []games.LiveGame
	Err   error
	Delay time.Duration
	Calls atomic.Int32
}

func (s *StubLiveLoader) Name() string { return "stub" }

// Load returns configured games after the optional delay.
func (s *StubLiveLoader) Load(ctx context.Context) ([]games.LiveGame, error) {
	s.Calls.Add(1)
	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Delay):
		}
	}
	return s.Games, s.Err
}
