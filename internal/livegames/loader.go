package livegames

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-insights-service/internal/logging"
)

const defaultConcurrency = 8

// LogoFunc returns the logo URL for a team tricode.
type LogoFunc func(tricode string) string

// Loader reads every document a Source lists and turns it into games.
type Loader struct {
	source      Source
	logger      *slog.Logger
	logo        LogoFunc
	concurrency int
}

// NewLoader creates a loader. logo may be nil.
func NewLoader(source Source, logger *slog.Logger, logo LogoFunc) *Loader {
	return &Loader{
		source:      source,
		logger:      logger,
		logo:        logo,
		concurrency: defaultConcurrency,
	}
}

// Name reports the underlying source name.
func (l *Loader) Name() string {
	return l.source.Name()
}

// Load returns the parsed games sorted by start time, then id. Files that
// cannot be read or parsed are skipped with a warning.
func (l *Loader) Load(ctx context.Context) ([]games.LiveGame, error) {
	keys, err := l.source.List(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu  sync.Mutex
		out = make([]games.LiveGame, 0, len(keys))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for _, key := range keys {
		g.Go(func() error {
			body, err := l.source.Read(gctx, key)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logging.Warn(l.logger, "live game read failed", logging.FieldKey, key, logging.FieldSource, l.source.Name(), logging.FieldError, err)
				return nil
			}
			game, err := ParseGame(key, body)
			if err != nil {
				logging.Warn(l.logger, "live game skipped", logging.FieldKey, key, logging.FieldSource, l.source.Name(), logging.FieldError, err)
				return nil
			}
			game.Source = l.source.Name()
			if l.logo != nil {
				game.HomeTeam.LogoURL = l.logo(game.HomeTeam.Tricode)
				game.AwayTeam.LogoURL = l.logo(game.AwayTeam.Tricode)
			}
			mu.Lock()
			out = append(out, game)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
