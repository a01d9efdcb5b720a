package server

import (
	"context"
	"log/slog"
	"os"

	"github.com/preston-bernstein/nba-insights-service/internal/config"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-insights-service/internal/livegames"
	"github.com/preston-bernstein/nba-insights-service/internal/logging"
	"github.com/preston-bernstein/nba-insights-service/internal/poller"
	"github.com/preston-bernstein/nba-insights-service/internal/resolver"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

// newS3Source remains a var for tests to override.
var newS3Source = func(ctx context.Context, bucket, prefix, region string) (livegames.Source, error) {
	return livegames.NewS3Source(ctx, bucket, prefix, region)
}

// buildDirectory loads TEAMS_FILE over the built-in directory. A missing or
// malformed file falls back to the built-in teams.
func buildDirectory(cfg config.Config, logger *slog.Logger) *teams.Directory {
	if cfg.Teams.File == "" {
		return teams.NewDirectory(cfg.Teams.LogoBase)
	}
	f, err := os.Open(cfg.Teams.File)
	if err != nil {
		logging.Warn(logger, "teams file unavailable, using built-in directory", "file", cfg.Teams.File, logging.FieldError, err)
		return teams.NewDirectory(cfg.Teams.LogoBase)
	}
	defer f.Close()
	dir, err := teams.LoadDirectory(f, cfg.Teams.LogoBase)
	if err != nil {
		logging.Warn(logger, "teams file invalid, using built-in directory", "file", cfg.Teams.File, logging.FieldError, err)
		return teams.NewDirectory(cfg.Teams.LogoBase)
	}
	return dir
}

// buildNormalizer applies the roster options. An unknown invalid-minutes
// policy falls back to dropping the row.
func buildNormalizer(cfg config.Config, logger *slog.Logger) *roster.Normalizer {
	opts := roster.Options{
		MinMinutes:     cfg.Roster.MinMinutes,
		TotalMarker:    cfg.Roster.TotalMarker,
		InvalidMinutes: roster.InvalidPolicy(cfg.Roster.InvalidMinutes),
	}
	n, err := roster.NewNormalizer(opts)
	if err != nil {
		logging.Warn(logger, "invalid roster options, dropping unparseable minutes", logging.FieldError, err)
		opts.InvalidMinutes = roster.PolicyDrop
		n, _ = roster.NewNormalizer(opts)
	}
	return n
}

func buildResolver(cfg config.Config, logger *slog.Logger) *resolver.Resolver {
	r, err := resolver.New(resolver.WithCutoff(cfg.Roster.MatchCutoff), resolver.WithFold(cfg.Roster.MatchFold))
	if err != nil {
		logging.Warn(logger, "invalid match cutoff, using default", "cutoff", cfg.Roster.MatchCutoff, logging.FieldError, err)
		r, _ = resolver.New(resolver.WithFold(cfg.Roster.MatchFold))
	}
	return r
}

// buildLiveLoader returns nil when live games are off or the source cannot be built.
func buildLiveLoader(ctx context.Context, cfg config.Config, dir *teams.Directory, logger *slog.Logger) poller.LiveLoader {
	var source livegames.Source
	switch cfg.Live.Source {
	case config.LiveSourceOff:
		return nil
	case config.LiveSourceAWS:
		s3, err := newS3Source(ctx, cfg.Live.Bucket, cfg.Live.Prefix, cfg.Live.Region)
		if err != nil {
			logging.Warn(logger, "live games source unavailable", logging.FieldSource, cfg.Live.Source, logging.FieldError, err)
			return nil
		}
		source = s3
	default:
		source = livegames.NewLocalSource(cfg.Live.Dir)
	}
	return livegames.NewLoader(source, logger, teamLogo(dir))
}

// teamLogo resolves live feed tricodes to directory logo URLs.
func teamLogo(dir *teams.Directory) livegames.LogoFunc {
	return func(tricode string) string {
		if team, ok := dir.Lookup(tricode); ok {
			return team.LogoURL
		}
		return ""
	}
}
