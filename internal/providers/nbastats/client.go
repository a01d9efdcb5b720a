// Package nbastats reads shot logs from the league stats service. A player's
// shots are fetched per team they played for in the season, so traded players
// get their full log.
package nbastats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
)

const (
	providerName       = "nbastats"
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 20 * time.Second
	leagueID           = "00"
	maxErrorBody       = 512
	userAgent          = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer            = "https://www.nba.com/"

	pathAllPlayers = "/commonallplayers"
	pathCareer     = "/playercareerstats"
	pathShots      = "/shotchartdetail"
)

// Config controls how the client reaches the stats service.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client implements providers.ShotProvider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a client. An empty BaseURL uses the public stats host.
func NewClient(cfg Config) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{baseURL: base, httpClient: client}
}

// FetchShots looks up the player's id, the teams they played for in season,
// and the field goal attempts for each team.
func (c *Client) FetchShots(ctx context.Context, name, season string) (players.ShotChart, error) {
	id, err := c.playerID(ctx, name, season)
	if err != nil {
		return players.ShotChart{}, err
	}
	teamIDs, err := c.seasonTeams(ctx, id, season)
	if err != nil {
		return players.ShotChart{}, err
	}

	chart := players.ShotChart{Player: name, PlayerID: id, Season: season, TeamIDs: teamIDs, Source: providerName}
	for _, teamID := range teamIDs {
		shots, err := c.shots(ctx, id, teamID, season)
		if err != nil {
			return players.ShotChart{}, err
		}
		chart.Shots = append(chart.Shots, shots...)
	}
	chart.Summarize()
	return chart, nil
}

func (c *Client) playerID(ctx context.Context, name, season string) (int, error) {
	body, err := c.get(ctx, pathAllPlayers, url.Values{
		"LeagueID":            {leagueID},
		"Season":              {season},
		"IsOnlyCurrentSeason": {"0"},
	})
	if err != nil {
		return 0, err
	}
	return decodePlayerID(body, name)
}

func (c *Client) seasonTeams(ctx context.Context, playerID int, season string) ([]int, error) {
	body, err := c.get(ctx, pathCareer, url.Values{
		"PlayerID": {strconv.Itoa(playerID)},
		"PerMode":  {"PerGame"},
		"LeagueID": {leagueID},
	})
	if err != nil {
		return nil, err
	}
	return decodeSeasonTeams(body, season)
}

func (c *Client) shots(ctx context.Context, playerID, teamID int, season string) ([]players.Shot, error) {
	body, err := c.get(ctx, pathShots, url.Values{
		"PlayerID":       {strconv.Itoa(playerID)},
		"TeamID":         {strconv.Itoa(teamID)},
		"Season":         {season},
		"SeasonType":     {"Regular Season"},
		"ContextMeasure": {"FGA"},
		"LeagueID":       {leagueID},
		"GameID":         {""},
		"LastNGames":     {"0"},
		"Month":          {"0"},
		"OpponentTeamID": {"0"},
		"Period":         {"0"},
	})
	if err != nil {
		return nil, err
	}
	return decodeShots(body)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", referer)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%s %s: %w", providerName, path, providers.ErrNotFound)
	case http.StatusTooManyRequests:
		return nil, &providers.RateLimitError{Provider: providerName, StatusCode: resp.StatusCode, Message: providerName + " rate limited"}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.StatusError{Provider: providerName, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
}
