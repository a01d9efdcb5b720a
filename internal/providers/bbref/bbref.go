// Package bbref scrapes the per-game season table from basketball-reference.
package bbref

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

const (
	providerName       = "bbref"
	defaultBaseURL     = "https://www.basketball-reference.com"
	defaultHTTPTimeout = 20 * time.Second
	tableID            = "per_game_stats"
	userAgent          = "Mozilla/5.0 (compatible; nba-insights-service)"
)

// dataStats maps data-stat attributes to table column names. Both the current
// and the older attribute names are listed.
var dataStats = map[string]string{
	"player":         providers.ColumnPlayer,
	"name_display":   providers.ColumnPlayer,
	"team_id":        providers.ColumnTeam,
	"team_name_abbr": providers.ColumnTeam,
	"pos":            providers.ColumnPosition,
	"mp_per_g":       providers.ColumnMinutes,
	"age":            roster.StatAge,
	"g":              roster.StatGames,
	"pts_per_g":      roster.StatPoints,
	"ast_per_g":      roster.StatAssists,
	"trb_per_g":      roster.StatRebounds,
	"orb_per_g":      roster.StatOffReb,
	"drb_per_g":      roster.StatDefReb,
	"stl_per_g":      roster.StatSteals,
	"blk_per_g":      roster.StatBlocks,
	"tov_per_g":      roster.StatTurnovers,
	"fg_pct":         roster.StatFGPct,
	"fg2_pct":        roster.StatTwoPct,
	"fg3_pct":        roster.StatThreePct,
	"ft_pct":         roster.StatFTPct,
}

// Config controls which season is scraped and how.
type Config struct {
	BaseURL    string
	Season     int // ending year, 2025 for 2024-25
	HTTPClient *http.Client
}

// Provider implements the roster and directory capabilities by scraping.
type Provider struct {
	providers.NoProfiles
	baseURL string
	season  int
	client  *http.Client
}

// New creates a scraper for one season.
func New(cfg Config) *Provider {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Provider{baseURL: base, season: cfg.Season, client: client}
}

func (p *Provider) pageURL() string {
	return fmt.Sprintf("%s/leagues/NBA_%d_per_game.html", p.baseURL, p.season)
}

// FetchSeasonRows downloads and parses the per-game table.
func (p *Provider) FetchSeasonRows(ctx context.Context) ([]roster.SeasonRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.pageURL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%s season %d: %w", providerName, p.season, providers.ErrNotFound)
	case http.StatusTooManyRequests:
		return nil, &providers.RateLimitError{Provider: providerName, StatusCode: resp.StatusCode}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.StatusError{Provider: providerName, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	html, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return ParseTable(html)
}

// FetchPlayerNames lists the distinct players on the page.
func (p *Provider) FetchPlayerNames(ctx context.Context) ([]string, error) {
	rows, err := p.FetchSeasonRows(ctx)
	if err != nil {
		return nil, err
	}
	return roster.Names(rows), nil
}

// ParseTable extracts per-game rows from a season page. Tables that the site
// ships inside HTML comments are found by parsing the page a second time with
// comment markers removed.
func ParseTable(html []byte) ([]roster.SeasonRow, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	table := doc.Find("table#" + tableID)
	if table.Length() == 0 {
		clean := strings.ReplaceAll(string(html), "<!--", "")
		clean = strings.ReplaceAll(clean, "-->", "")
		doc, err = goquery.NewDocumentFromReader(strings.NewReader(clean))
		if err != nil {
			return nil, fmt.Errorf("parse uncommented page: %w", err)
		}
		table = doc.Find("table#" + tableID)
	}
	if table.Length() == 0 {
		return nil, fmt.Errorf("%s: table %s not found", providerName, tableID)
	}

	var rows []roster.SeasonRow
	table.First().Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.HasClass("thead") {
			return
		}
		cells := make(map[string]string)
		tr.Find("th[data-stat], td[data-stat]").Each(func(_ int, cell *goquery.Selection) {
			column, ok := dataStats[cell.AttrOr("data-stat", "")]
			if !ok {
				return
			}
			cells[column] = strings.TrimSpace(cell.Text())
		})
		if strings.TrimSpace(cells[providers.ColumnPlayer]) == "" {
			return
		}
		rows = append(rows, providers.RowFromCells(cells))
	})
	return rows, nil
}
