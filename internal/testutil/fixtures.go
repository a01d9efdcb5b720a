package testutil

import (
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

// SampleRow returns a season row with the five comparison stats set.
func SampleRow(player, team, minutes string, pts, ast, trb float64) roster.SeasonRow {
	return roster.SeasonRow{
		Player:   player,
		Team:     team,
		Position: "F",
		Minutes:  minutes,
		Stats: map[string]float64{
			roster.StatPoints:   pts,
			roster.StatAssists:  ast,
			roster.StatRebounds: trb,
			roster.StatSteals:   1,
			roster.StatBlocks:   0.5,
		},
	}
}

// SampleRows returns a small raw table with one traded player and one bench row.
func SampleRows() []roster.SeasonRow {
	return []roster.SeasonRow{
		SampleRow("LeBron James", "LAL", "35.0", 25.7, 8.3, 7.3),
		SampleRow("Luka Doncic", "DAL", "37.5", 33.9, 9.8, 9.2),
		SampleRow("Dennis Schroder", "TOT", "30.0", 14.0, 6.0, 3.0),
		SampleRow("Dennis Schroder", "BRK", "29.0", 14.5, 6.4, 3.1),
		SampleRow("Dennis Schroder", "GSW", "31.0", 13.2, 5.5, 2.8),
		SampleRow("Jalen Brunson", "NYK", "35.4", 28.7, 6.7, 3.6),
		SampleRow("Deep Bench", "BOS", "2.0", 1.0, 0.2, 0.4),
	}
}

// SampleLiveGame returns a scheduled game starting at start.
func SampleLiveGame(id string, start time.Time) games.LiveGame {
	return games.LiveGame{
		ID:        id,
		HomeTeam:  games.TeamLine{Tricode: "LAL", Name: "Lakers"},
		AwayTeam:  games.TeamLine{Tricode: "BOS", Name: "Celtics"},
		StartTime: start,
		EndTime:   start.Add(2*time.Hour + 30*time.Minute),
		Status:    games.StatusScheduled,
	}
}
