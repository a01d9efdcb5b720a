package games

import (
	"fmt"
	"time"
)

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
)

// Leader is a team's top performer in a game.
type Leader struct {
	Name     string `json:"name"`
	Points   int    `json:"points"`
	Rebounds int    `json:"rebounds"`
	Assists  int    `json:"assists"`
}

// TeamLine is one side of a live game.
type TeamLine struct {
	Name         string `json:"name"`
	Tricode      string `json:"tricode"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Score        int    `json:"score"`
	PeriodScores []int  `json:"periodScores"`
	LogoURL      string `json:"logoUrl,omitempty"`
	Leader       Leader `json:"leader"`
}

// LiveGame is a game read from the live feed.
type LiveGame struct {
	ID        string     `json:"id"`
	HomeTeam  TeamLine   `json:"homeTeam"`
	AwayTeam  TeamLine   `json:"awayTeam"`
	StartTime time.Time  `json:"startTime"`
	EndTime   time.Time  `json:"endTime"`
	Status    GameStatus `json:"status"`
	Countdown string     `json:"countdown,omitempty"`
	Source    string     `json:"source"`
}

// StatusAt derives the lifecycle state at now: scheduled before the start,
// in progress until the end, final afterwards.
func (g LiveGame) StatusAt(now time.Time) (GameStatus, string) {
	switch {
	case g.StartTime.After(now):
		return StatusScheduled, formatCountdown(g.StartTime.Sub(now))
	case g.EndTime.After(now):
		return StatusInProgress, ""
	default:
		return StatusFinal, ""
	}
}

// WithStatus returns a copy with Status and Countdown filled for now.
func (g LiveGame) WithStatus(now time.Time) LiveGame {
	g.Status, g.Countdown = g.StatusAt(now)
	return g
}

func formatCountdown(d time.Duration) string {
	total := int(d.Seconds())
	hours, rem := total/3600, total%3600
	return fmt.Sprintf("%dh %dm %ds", hours, rem/60, rem%60)
}

// LiveResponse is the payload returned by /games/live.
type LiveResponse struct {
	AsOf  time.Time  `json:"asOf"`
	Games []LiveGame `json:"games"`
}

// NewLiveResponse builds a LiveResponse payload with statuses derived at asOf.
func NewLiveResponse(asOf time.Time, games []LiveGame) LiveResponse {
	out := make([]LiveGame, 0, len(games))
	for _, g := range games {
		out = append(out, g.WithStatus(asOf))
	}
	return LiveResponse{AsOf: asOf, Games: out}
}
