// Package fixture serves a small deterministic season table for local runs and tests.
package fixture

import (
	"context"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

const providerName = "fixture"

// Provider returns a static season table, name directory and profiles.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

func line(player, team, pos, mp string, pts, ast, trb, stl, blk float64) roster.SeasonRow {
	return roster.SeasonRow{
		Player:   player,
		Team:     team,
		Position: pos,
		Minutes:  mp,
		Stats: map[string]float64{
			roster.StatPoints:   pts,
			roster.StatAssists:  ast,
			roster.StatRebounds: trb,
			roster.StatSteals:   stl,
			roster.StatBlocks:   blk,
		},
	}
}

// Rows is the fixture season table. It contains a traded player with a
// season total and two stints, a low-minutes player and a row with
// malformed minutes.
func Rows() []roster.SeasonRow {
	return []roster.SeasonRow{
		line("LeBron James", "LAL", "SF", "35.3", 25.7, 8.3, 7.3, 1.3, 0.5),
		line("Luka Doncic", "DAL", "PG", "37.5", 33.9, 9.8, 9.2, 1.4, 0.5),
		line("Dennis Schroder", "TOT", "PG", "28.3", 13.1, 5.6, 2.9, 0.8, 0.2),
		line("Dennis Schroder", "BRK", "PG", "28.8", 14.0, 6.4, 3.0, 0.9, 0.2),
		line("Dennis Schroder", "GSW", "PG", "24.7", 10.6, 4.1, 2.6, 0.6, 0.1),
		line("Jalen Brunson", "NYK", "PG", "35.4", 28.7, 6.7, 3.6, 0.9, 0.2),
		line("Jalen Green", "HOU", "SG", "31.7", 19.6, 3.5, 5.2, 0.8, 0.3),
		line("Nikola Jokic", "DEN", "C", "34.6", 26.4, 9.0, 12.4, 1.4, 0.9),
		line("Victor Wembanyama", "SAS", "C", "29.7", 21.4, 3.9, 10.6, 1.2, 3.6),
		line("Deep Bench", "MEM", "C", "3.2", 1.0, 0.2, 0.8, 0.0, 0.1),
		line("Broken Row", "CHI", "SF", "n/a", 5.0, 1.0, 2.0, 0.3, 0.2),
	}
}

var profiles = map[string]players.Profile{
	"LeBron James": {
		Name:      "LeBron James",
		Team:      "LAL",
		Position:  "SF",
		Age:       "39",
		Birthday:  "1984-12-30",
		Country:   "USA",
		DraftYear: "2003",
		Height:    "6-9",
		Weight:    "250",
		School:    "St. Vincent-St. Mary HS (OH)",
		ImageURL:  "https://cdn.nba.com/headshots/nba/latest/1040x760/2544.png",
	},
	"Luka Doncic": {
		Name:      "Luka Doncic",
		Team:      "DAL",
		Position:  "PG",
		Age:       "25",
		Birthday:  "1999-02-28",
		Country:   "Slovenia",
		DraftYear: "2018",
		Height:    "6-7",
		Weight:    "230",
		ImageURL:  "https://cdn.nba.com/headshots/nba/latest/1040x760/1629029.png",
	},
}

// FetchSeasonRows returns a fresh copy of the fixture table.
func (p *Provider) FetchSeasonRows(ctx context.Context) ([]roster.SeasonRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Rows(), nil
}

// FetchPlayerNames returns every distinct fixture name.
func (p *Provider) FetchPlayerNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return roster.Names(Rows()), nil
}

// FetchProfile returns a profile for the handful of players that have one.
func (p *Provider) FetchProfile(ctx context.Context, name string) (players.Profile, error) {
	if err := ctx.Err(); err != nil {
		return players.Profile{}, err
	}
	profile, ok := profiles[name]
	if !ok {
		return players.Profile{}, providers.ErrNotFound
	}
	if row, found := roster.Find(Rows(), name); found {
		profile.Stats = row.Stats
	}
	profile.Source = providerName
	return profile, nil
}

var lebronShots = []players.Shot{
	{GameID: "0022200002", TeamID: 1610612747, TeamName: "Los Angeles Lakers", Period: 1, ActionType: "Driving Layup Shot", ShotType: "2PT Field Goal", Zone: "Restricted Area", Distance: 1, X: -4, Y: 12, Made: true},
	{GameID: "0022200002", TeamID: 1610612747, TeamName: "Los Angeles Lakers", Period: 1, ActionType: "Jump Shot", ShotType: "3PT Field Goal", Zone: "Above the Break 3", Distance: 26, X: -152, Y: 210},
	{GameID: "0022200017", TeamID: 1610612747, TeamName: "Los Angeles Lakers", Period: 3, ActionType: "Pullup Jump shot", ShotType: "2PT Field Goal", Zone: "Mid-Range", Distance: 17, X: 165, Y: 60, Made: true},
	{GameID: "0022200017", TeamID: 1610612747, TeamName: "Los Angeles Lakers", Period: 4, ActionType: "Cutting Dunk Shot", ShotType: "2PT Field Goal", Zone: "Restricted Area", Distance: 0, X: 2, Y: 3, Made: true},
}

// FetchShots returns a short shot log for LeBron James in any season.
func (p *Provider) FetchShots(ctx context.Context, name, season string) (players.ShotChart, error) {
	if err := ctx.Err(); err != nil {
		return players.ShotChart{}, err
	}
	if name != "LeBron James" {
		return players.ShotChart{}, providers.ErrNotFound
	}
	chart := players.ShotChart{
		Player:   name,
		PlayerID: 2544,
		Season:   season,
		TeamIDs:  []int{1610612747},
		Shots:    append([]players.Shot(nil), lebronShots...),
		Source:   providerName,
	}
	chart.Summarize()
	return chart, nil
}

// FetchImageURL returns the headshot URL for profiled players.
func (p *Provider) FetchImageURL(ctx context.Context, name string) (string, error) {
	profile, err := p.FetchProfile(ctx, name)
	if err != nil {
		return "", err
	}
	return profile.ImageURL, nil
}
