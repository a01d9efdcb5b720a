package providers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

// fallbackProvider serves from secondary whenever primary fails.
type fallbackProvider struct {
	primary   DataProvider
	secondary DataProvider
	name      string
	logger    *slog.Logger
}

// NewFallbackProvider returns primary backed by secondary. A nil secondary returns primary as is.
func NewFallbackProvider(primary, secondary DataProvider, name string, logger *slog.Logger) DataProvider {
	if secondary == nil {
		return primary
	}
	if primary == nil {
		return secondary
	}
	return &fallbackProvider{primary: primary, secondary: secondary, name: name, logger: logger}
}

func (f *fallbackProvider) FetchSeasonRows(ctx context.Context) ([]roster.SeasonRow, error) {
	return withFallback(ctx, f, "season_rows", f.primary.FetchSeasonRows, f.secondary.FetchSeasonRows)
}

func (f *fallbackProvider) FetchPlayerNames(ctx context.Context) ([]string, error) {
	return withFallback(ctx, f, "player_names", f.primary.FetchPlayerNames, f.secondary.FetchPlayerNames)
}

func (f *fallbackProvider) FetchProfile(ctx context.Context, name string) (players.Profile, error) {
	return withFallback(ctx, f, "profile",
		func(ctx context.Context) (players.Profile, error) { return f.primary.FetchProfile(ctx, name) },
		func(ctx context.Context) (players.Profile, error) { return f.secondary.FetchProfile(ctx, name) },
	)
}

func (f *fallbackProvider) FetchImageURL(ctx context.Context, name string) (string, error) {
	return withFallback(ctx, f, "image",
		func(ctx context.Context) (string, error) { return f.primary.FetchImageURL(ctx, name) },
		func(ctx context.Context) (string, error) { return f.secondary.FetchImageURL(ctx, name) },
	)
}

func withFallback[T any](ctx context.Context, f *fallbackProvider, op string, primary, secondary func(context.Context) (T, error)) (T, error) {
	v, err := primary(ctx)
	if err == nil {
		return v, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		var zero T
		return zero, ctxErr
	}
	if !errors.Is(err, ErrNotFound) {
		logWithProvider(ctx, f.logger, slog.LevelWarn, f.name, "primary provider failed, using fallback", "op", op, "err", err)
	}
	fv, ferr := secondary(ctx)
	if ferr != nil {
		var zero T
		return zero, errors.Join(err, ferr)
	}
	return fv, nil
}
