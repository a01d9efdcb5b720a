package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-insights-service/internal/config"
	"github.com/preston-bernstein/nba-insights-service/internal/metrics"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/csvfile"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/nbastats"
)

// providerFactory assembles the provider with shared wrappers (rate limit, retry, fallback).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	name := normalizeProviderName(cfg.Provider.Name, base)
	limited := providers.NewRateLimitedProvider(base, cfg.Provider.MinInterval, f.logger)
	retrying := providers.NewRetryingProvider(limited, f.logger, f.metrics, name, cfg.Provider.MaxAttempts, 0)
	if cfg.Provider.FallbackCSV == "" || name == providerCSV {
		return retrying
	}
	return providers.NewFallbackProvider(retrying, csvfile.New(cfg.Provider.FallbackCSV), name, f.logger)
}

// shots returns the shot log provider behind the same rate limit and retry
// wrappers, or nil when shot logs are off.
func (f providerFactory) shots(cfg config.Config) providers.ShotProvider {
	var base providers.ShotProvider
	switch cfg.Shots.Source {
	case config.ShotsSourceOff:
		return nil
	case config.ShotsSourceNBAStats:
		base = nbastats.NewClient(nbastats.Config{BaseURL: cfg.Shots.BaseURL})
	default:
		base = fixture.New()
	}
	name := normalizeProviderName("", base)
	limited := providers.NewRateLimitedShotProvider(base, cfg.Provider.MinInterval, f.logger)
	return providers.NewRetryingShotProvider(limited, f.logger, f.metrics, name, cfg.Provider.MaxAttempts, 0)
}
