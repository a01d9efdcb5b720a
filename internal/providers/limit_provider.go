package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

const defaultMinInterval = time.Second

// limiter hands out call slots at least interval apart.
type limiter struct {
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	nextAt time.Time
}

func newLimiter(interval time.Duration, logger *slog.Logger) *limiter {
	if interval <= 0 {
		interval = defaultMinInterval
	}
	return &limiter{interval: interval, logger: logger, now: time.Now}
}

// rateLimitedProvider spaces upstream calls at least interval apart.
type rateLimitedProvider struct {
	*limiter
	next DataProvider
}

// NewRateLimitedProvider returns a DataProvider that waits between calls to respect upstream quotas.
// The first call goes through immediately.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	return &rateLimitedProvider{limiter: newLimiter(interval, logger), next: next}
}

func (p *rateLimitedProvider) FetchSeasonRows(ctx context.Context) ([]roster.SeasonRow, error) {
	if err := p.acquire(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchSeasonRows(ctx)
}

func (p *rateLimitedProvider) FetchPlayerNames(ctx context.Context) ([]string, error) {
	if err := p.acquire(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPlayerNames(ctx)
}

func (p *rateLimitedProvider) FetchProfile(ctx context.Context, name string) (players.Profile, error) {
	if err := p.acquire(ctx); err != nil {
		return players.Profile{}, err
	}
	return p.next.FetchProfile(ctx, name)
}

func (p *rateLimitedProvider) FetchImageURL(ctx context.Context, name string) (string, error) {
	if err := p.acquire(ctx); err != nil {
		return "", err
	}
	return p.next.FetchImageURL(ctx, name)
}

// Unwrap exposes the wrapped provider.
func (p *rateLimitedProvider) Unwrap() DataProvider {
	return p.next
}

func (p *rateLimitedProvider) acquire(ctx context.Context) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}
	return p.wait(ctx)
}

// rateLimitedShots spaces shot log calls the same way.
type rateLimitedShots struct {
	*limiter
	next ShotProvider
}

// NewRateLimitedShotProvider returns a ShotProvider that waits between calls.
func NewRateLimitedShotProvider(next ShotProvider, interval time.Duration, logger *slog.Logger) ShotProvider {
	return &rateLimitedShots{limiter: newLimiter(interval, logger), next: next}
}

func (p *rateLimitedShots) FetchShots(ctx context.Context, name, season string) (players.ShotChart, error) {
	if p.next == nil {
		return players.ShotChart{}, ErrProviderUnavailable
	}
	if err := p.wait(ctx); err != nil {
		return players.ShotChart{}, err
	}
	return p.next.FetchShots(ctx, name, season)
}

// wait reserves the next slot and sleeps until it arrives or ctx is done.
func (p *limiter) wait(ctx context.Context) error {
	p.mu.Lock()
	now := p.now()
	at := p.nextAt
	if at.Before(now) {
		at = now
	}
	p.nextAt = at.Add(p.interval)
	p.mu.Unlock()

	delay := at.Sub(now)
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
