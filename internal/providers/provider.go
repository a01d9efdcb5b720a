package providers

import (
	"context"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

// RosterProvider fetches the raw per-team season table. Rows are returned as
// received; normalization happens downstream.
type RosterProvider interface {
	FetchSeasonRows(ctx context.Context) ([]roster.SeasonRow, error)
}

// DirectoryProvider fetches the reference list of canonical player names.
type DirectoryProvider interface {
	FetchPlayerNames(ctx context.Context) ([]string, error)
}

// ProfileProvider fetches per-player detail keyed by canonical name.
// Implementations return ErrNotFound when they have nothing for the name.
type ProfileProvider interface {
	FetchProfile(ctx context.Context, name string) (players.Profile, error)
	FetchImageURL(ctx context.Context, name string) (string, error)
}

// ShotProvider fetches a player's shot log for one season ("2022-23").
type ShotProvider interface {
	FetchShots(ctx context.Context, name, season string) (players.ShotChart, error)
}

// DataProvider combines the roster, directory and profile capabilities.
type DataProvider interface {
	RosterProvider
	DirectoryProvider
	ProfileProvider
}

// NoProfiles can be embedded by providers that only serve tables.
type NoProfiles struct{}

// FetchProfile always reports ErrNotFound.
func (NoProfiles) FetchProfile(context.Context, string) (players.Profile, error) {
	return players.Profile{}, ErrNotFound
}

// FetchImageURL always reports ErrNotFound.
func (NoProfiles) FetchImageURL(context.Context, string) (string, error) {
	return "", ErrNotFound
}
