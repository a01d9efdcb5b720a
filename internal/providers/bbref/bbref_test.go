package bbref

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

const tableHTML = `<table id="per_game_stats"><thead><tr><th>Rk</th></tr></thead><tbody>
<tr><th data-stat="ranker">1</th><td data-stat="name_display"><a href="/players/a/achiupr01.html">Precious Achiuwa</a></td>
<td data-stat="age">24</td><td data-stat="team_name_abbr">2TM</td><td data-stat="pos">PF</td>
<td data-stat="mp_per_g">21.9</td><td data-stat="fg_pct">.501</td><td data-stat="pts_per_g">7.6</td></tr>
<tr class="thead"><th data-stat="ranker">Rk</th><td data-stat="name_display">Player</td></tr>
<tr><th data-stat="ranker">2</th><td data-stat="player">Bam Adebayo</td><td data-stat="team_id">MIA</td>
<td data-stat="mp_per_g"></td><td data-stat="pts_per_g">19.3</td><td data-stat="fg3_pct"></td></tr>
</tbody></table>`

func TestParseTableReadsDataStatCells(t *testing.T) {
	rows, err := ParseTable([]byte("<html><body>" + tableHTML + "</body></html>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	first := rows[0]
	if first.Player != "Precious Achiuwa" || first.Team != "TOT" || first.Position != "PF" || first.Minutes != "21.9" {
		t.Fatalf("unexpected first row %+v", first)
	}
	if first.Stats["PTS"] != 7.6 || first.Stats["FG%"] != 0.501 || first.Stats["Age"] != 24 {
		t.Fatalf("unexpected stats %+v", first.Stats)
	}
	second := rows[1]
	if second.Player != "Bam Adebayo" || second.Team != "MIA" || second.Minutes != "" {
		t.Fatalf("unexpected second row %+v", second)
	}
	if _, ok := second.Stats["3P%"]; ok {
		t.Fatalf("expected empty cell to be left out")
	}
}

func TestParseTableFindsCommentedTable(t *testing.T) {
	page := `<html><body><div id="all_per_game"><!--` + tableHTML + `--></div></body></html>`
	rows, err := ParseTable([]byte(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected rows from commented table, got %d", len(rows))
	}
}

func TestParseTableMissingTable(t *testing.T) {
	if _, err := ParseTable([]byte("<html><body><table id=\"other\"></table></body></html>")); err == nil {
		t.Fatalf("expected error when table is missing")
	}
}

func TestFetchSeasonRowsRequestsSeasonPage(t *testing.T) {
	var gotPath, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(tableHTML))
	}))
	defer srv.Close()

	p := New(Config{BaseURL: srv.URL + "/", Season: 2024})
	names, err := p.FetchPlayerNames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/leagues/NBA_2024_per_game.html" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotUA == "" {
		t.Fatalf("expected a user agent")
	}
	if len(names) != 2 {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestFetchSeasonRowsMapsStatuses(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusNotFound)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()
	p := New(Config{BaseURL: srv.URL, Season: 1900})

	if _, err := p.FetchSeasonRows(context.Background()); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	status.Store(http.StatusTooManyRequests)
	if _, err := p.FetchSeasonRows(context.Background()); err == nil {
		t.Fatalf("expected rate limit error")
	} else if _, ok := providers.AsRateLimitError(err); !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}

	status.Store(http.StatusInternalServerError)
	var statusErr *providers.StatusError
	if _, err := p.FetchSeasonRows(context.Background()); !errors.As(err, &statusErr) {
		t.Fatalf("expected status error, got %v", err)
	}
}

const tradedHTML = `<table id="per_game_stats"><tbody>
<tr><td data-stat="name_display">Precious Achiuwa</td><td data-stat="team_name_abbr">2TM</td><td data-stat="mp_per_g">21.9</td><td data-stat="pts_per_g">7.6</td></tr>
<tr><td data-stat="name_display">Precious Achiuwa</td><td data-stat="team_name_abbr">TOR</td><td data-stat="mp_per_g">17.5</td><td data-stat="pts_per_g">5.4</td></tr>
<tr><td data-stat="name_display">Precious Achiuwa</td><td data-stat="team_name_abbr">NYK</td><td data-stat="mp_per_g">24.2</td><td data-stat="pts_per_g">8.7</td></tr>
<tr><td data-stat="name_display">Bam Adebayo</td><td data-stat="team_name_abbr">MIA</td><td data-stat="mp_per_g">34.0</td><td data-stat="pts_per_g">19.3</td></tr>
</tbody></table>`

func TestParsedMultiTeamTotalsSurviveNormalize(t *testing.T) {
	rows, err := ParseTable([]byte(tradedHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, err := roster.NewNormalizer(roster.DefaultOptions())
	if err != nil {
		t.Fatalf("normalizer: %v", err)
	}
	res, err := n.Normalize(rows)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 clean rows, got %+v", res.Rows)
	}
	if res.Rows[0].Player != "Precious Achiuwa" || res.Rows[0].Team != roster.DefaultTotalMarker || res.Rows[0].Minutes != "21.9" {
		t.Fatalf("expected season total row kept, got %+v", res.Rows[0])
	}
	if len(res.Report.VanishedPlayers) != 0 {
		t.Fatalf("expected no vanished players, got %v", res.Report.VanishedPlayers)
	}
}
