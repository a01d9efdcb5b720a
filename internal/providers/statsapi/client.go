// Package statsapi reads the season table, name directory and player
// profiles from the remote stats service.
package statsapi

import (
	"context"
	"net/http"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

// Config controls how the client reaches the stats service.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client implements providers.DataProvider over HTTP.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a stats service client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchSeasonRows retrieves the raw per-team season table.
func (c *Client) FetchSeasonRows(ctx context.Context) ([]roster.SeasonRow, error) {
	body, err := c.get(ctx, pathDataset)
	if err != nil {
		return nil, err
	}
	return decodeDataset(body)
}

// FetchPlayerNames retrieves the canonical name directory.
func (c *Client) FetchPlayerNames(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, pathPlayers)
	if err != nil {
		return nil, err
	}
	return decodeNames(body)
}

// FetchProfile retrieves the detail record for an exact canonical name.
func (c *Client) FetchProfile(ctx context.Context, name string) (players.Profile, error) {
	body, err := c.get(ctx, pathPlayers+"/"+escapeName(name))
	if err != nil {
		return players.Profile{}, err
	}
	return decodeProfile(body, name)
}

// FetchImageURL retrieves the headshot URL for an exact canonical name.
func (c *Client) FetchImageURL(ctx context.Context, name string) (string, error) {
	body, err := c.get(ctx, pathImages+"/"+escapeName(name))
	if err != nil {
		return "", err
	}
	return decodeImage(body)
}
