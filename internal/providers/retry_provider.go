package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/logging"
	"github.com/preston-bernstein/nba-insights-service/internal/metrics"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	defaultMaxBackoff    = 5 * time.Second
)

// retryingProvider wraps a DataProvider with exponential backoff.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	initial     time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if name == "" {
		name = "provider"
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		initial:     initial,
	}
}

func (r *retryingProvider) FetchSeasonRows(ctx context.Context) ([]roster.SeasonRow, error) {
	return retry(ctx, r, "season_rows", r.inner.FetchSeasonRows)
}

func (r *retryingProvider) FetchPlayerNames(ctx context.Context) ([]string, error) {
	return retry(ctx, r, "player_names", r.inner.FetchPlayerNames)
}

func (r *retryingProvider) FetchProfile(ctx context.Context, name string) (players.Profile, error) {
	return retry(ctx, r, "profile", func(ctx context.Context) (players.Profile, error) {
		return r.inner.FetchProfile(ctx, name)
	})
}

func (r *retryingProvider) FetchImageURL(ctx context.Context, name string) (string, error) {
	return retry(ctx, r, "image", func(ctx context.Context) (string, error) {
		return r.inner.FetchImageURL(ctx, name)
	})
}

// Unwrap exposes the wrapped provider.
func (r *retryingProvider) Unwrap() DataProvider {
	return r.inner
}

// retryingShots retries shot log fetches with the same policy.
type retryingShots struct {
	policy *retryingProvider
	inner  ShotProvider
}

// NewRetryingShotProvider wraps a ShotProvider with retries. Defaults match NewRetryingProvider.
func NewRetryingShotProvider(inner ShotProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) ShotProvider {
	policy := NewRetryingProvider(nil, logger, recorder, name, maxAttempts, initial).(*retryingProvider)
	return &retryingShots{policy: policy, inner: inner}
}

func (r *retryingShots) FetchShots(ctx context.Context, name, season string) (players.ShotChart, error) {
	if r.inner == nil {
		return players.ShotChart{}, ErrProviderUnavailable
	}
	return retry(ctx, r.policy, "shots", func(ctx context.Context) (players.ShotChart, error) {
		return r.inner.FetchShots(ctx, name, season)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, op string, fn func(context.Context) (T, error)) (T, error) {
	var (
		result  T
		attempt int
	)
	hinted := &retryAfterBackOff{next: backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1))}
	policy := backoff.WithContext(hinted, ctx)

	operation := func() error {
		attempt++
		start := time.Now()
		v, err := fn(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			result = v
			return nil
		}
		if errors.Is(err, ErrNotFound) {
			return backoff.Permanent(err)
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
			hinted.hint = rl.RetryAfter
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		r.logWarn(ctx, "provider fetch retry",
			"op", op,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"err", err,
		)
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logWarn(ctx, "provider fetch failed", "op", op, "attempts", attempt, "err", err)
		}
		var zero T
		return zero, err
	}
	return result, nil
}

func (r *retryingProvider) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initial
	b.MaxInterval = defaultMaxBackoff
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	logWithProvider(ctx, logger, slog.LevelWarn, r.name, msg, args...)
}

// retryAfterBackOff waits at least as long as the last upstream Retry-After.
type retryAfterBackOff struct {
	next backoff.BackOff
	hint time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	d := b.next.NextBackOff()
	if d == backoff.Stop {
		return d
	}
	if b.hint > d {
		d = b.hint
	}
	b.hint = 0
	return d
}

func (b *retryAfterBackOff) Reset() {
	b.hint = 0
	b.next.Reset()
}
