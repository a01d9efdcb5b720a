package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/config"
	"github.com/preston-bernstein/nba-insights-service/internal/metrics"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/nbastats"
	"github.com/preston-bernstein/nba-insights-service/internal/teststubs"
)

func TestProviderFactoryBuildsWithDefaultInterval(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: config.ProviderConfig{Name: "fixture"}})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	rows, err := prov.FetchSeasonRows(context.Background())
	if err != nil || len(rows) != len(fixture.Rows()) {
		t.Fatalf("expected fixture rows through wrappers, got %d err=%v", len(rows), err)
	}
}

func TestProviderFactoryFallsBackToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "per_game.csv")
	csv := "Player,Tm,Pos,MP,PTS\nBackup Player,BOS,G,20.0,9.5\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	cfg := config.Config{Provider: config.ProviderConfig{
		Name:        "statsapi",
		FallbackCSV: path,
		MinInterval: time.Millisecond,
		MaxAttempts: 1,
	}}
	prov := newProviderFactory(nil, nil).wrap(cfg, &teststubs.StubProvider{Err: errors.New("upstream down")})

	rows, err := prov.FetchSeasonRows(context.Background())
	if err != nil {
		t.Fatalf("expected fallback rows, got %v", err)
	}
	if len(rows) != 1 || rows[0].Player != "Backup Player" {
		t.Fatalf("unexpected fallback rows %+v", rows)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("StatsAPI", nil); got != "statsapi" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "fixture" {
		t.Fatalf("expected package-derived name, got %s", got)
	}
	if got := normalizeProviderName("  ", nbastats.NewClient(nbastats.Config{})); got != "nbastats" {
		t.Fatalf("expected package-derived name for blank raw, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %s", got)
	}
}

func TestProviderFactoryShots(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	if p := factory.shots(config.Config{Shots: config.ShotsConfig{Source: config.ShotsSourceOff}}); p != nil {
		t.Fatalf("expected no shot provider when off, got %T", p)
	}

	p := factory.shots(config.Config{Shots: config.ShotsConfig{Source: config.ShotsSourceFixture}})
	chart, err := p.FetchShots(context.Background(), "LeBron James", "2022-23")
	if err != nil || chart.Attempts == 0 {
		t.Fatalf("expected fixture shots through wrappers, got %+v err=%v", chart, err)
	}
}

func TestProviderFactoryShotsUsesStatsClient(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	rec := metrics.NewRecorder()
	cfg := config.Config{
		Provider: config.ProviderConfig{MinInterval: time.Millisecond, MaxAttempts: 3},
		Shots:    config.ShotsConfig{Source: config.ShotsSourceNBAStats, BaseURL: srv.URL},
	}
	p := newProviderFactory(nil, rec).shots(cfg)

	if _, err := p.FetchShots(context.Background(), "LeBron James", "2022-23"); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from stats client, got %v", err)
	}
	if hits != 1 || rec.ProviderCalls(config.ShotsSourceNBAStats) != 1 {
		t.Fatalf("expected one upstream call, got hits=%d recorded=%d", hits, rec.ProviderCalls(config.ShotsSourceNBAStats))
	}
}
