package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-insights-service/internal/config"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/bbref"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/csvfile"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/statsapi"
)

const (
	providerFixture  = "fixture"
	providerStatsAPI = "statsapi"
	providerCSV      = "csv"
	providerBBRef    = "bbref"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider.Name {
	case providerFixture, "":
		return fixture.New()
	case providerStatsAPI:
		return statsapi.NewClient(statsapi.Config{BaseURL: cfg.Provider.BaseURL})
	case providerCSV:
		return csvfile.New(cfg.Provider.CSVPath)
	case providerBBRef:
		return bbref.New(bbref.Config{Season: cfg.Provider.Season})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider.Name))
		}
		return fixture.New()
	}
}
