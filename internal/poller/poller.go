package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-insights-service/internal/logging"
	"github.com/preston-bernstein/nba-insights-service/internal/metrics"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
	"github.com/preston-bernstein/nba-insights-service/internal/store"
)

const (
	defaultInterval = 5 * time.Minute
	readyFailures   = 3

	sourceProvider = "provider"
	sourceSnapshot = "snapshot"
)

// SnapshotWriter persists clean roster snapshots.
type SnapshotWriter interface {
	WriteRosterSnapshot(snap snapshots.RosterSnapshot) (bool, error)
}

// LiveLoader loads the current live games.
type LiveLoader interface {
	Name() string
	Load(ctx context.Context) ([]games.LiveGame, error)
}

// Store receives refreshed state.
type Store interface {
	SetRoster(state store.RosterState)
	SetLiveGames(g []games.LiveGame, at time.Time)
}

// Deps groups the collaborators of a Poller. Only Provider, Normalizer and
// Store are required.
type Deps struct {
	Provider   providers.DataProvider
	Normalizer *roster.Normalizer
	Store      Store
	Live       LiveLoader
	Writer     SnapshotWriter
	Snapshots  snapshots.Store
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
	Source     string
}

// Poller refreshes the roster, the name directory and live games on an
// interval and writes a snapshot after every successful cycle.
type Poller struct {
	deps     Deps
	interval time.Duration
	now      func() time.Time

	cycleMu sync.Mutex

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu       sync.RWMutex
	status         Status
	snapshotLoaded bool
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailures
}

// New constructs a Poller with sane defaults.
func New(deps Deps, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if deps.Source == "" {
		deps.Source = sourceProvider
	}
	return &Poller{
		deps:     deps,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		_ = p.Refresh(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				_ = p.Refresh(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Refresh runs one cycle synchronously. Cycles never overlap.
func (p *Poller) Refresh(ctx context.Context) error {
	p.cycleMu.Lock()
	defer p.cycleMu.Unlock()

	start := p.now()
	p.recordAttempt(start)
	err := p.cycle(ctx)
	p.deps.Metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		p.logError("poller refresh failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		p.loadSnapshotOnce()
		return err
	}
	p.recordSuccess(start)
	return nil
}

func (p *Poller) cycle(ctx context.Context) error {
	if p.deps.Provider == nil {
		return providers.ErrProviderUnavailable
	}

	var (
		rows    []roster.SeasonRow
		names   []string
		live    []games.LiveGame
		liveErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = p.deps.Provider.FetchSeasonRows(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		names, err = p.deps.Provider.FetchPlayerNames(gctx)
		return err
	})
	if p.deps.Live != nil {
		// Uses the parent context so a roster failure does not cancel it.
		g.Go(func() error {
			live, liveErr = p.deps.Live.Load(ctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	result, err := p.deps.Normalizer.Normalize(rows)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = roster.Names(result.Rows)
	}

	now := p.now().UTC()
	state := store.RosterState{
		Rows:        result.Rows,
		Names:       names,
		RawCount:    len(rows),
		Report:      result.Report,
		RefreshedAt: now,
		Source:      p.deps.Source,
	}
	p.deps.Store.SetRoster(state)
	p.deps.Metrics.RecordRosterRefresh(len(result.Rows), dropCounts(result.Report))

	if p.deps.Live != nil {
		if liveErr != nil {
			p.logWarn("live games load failed", logging.FieldSource, p.deps.Live.Name(), "error", liveErr)
		} else {
			p.deps.Store.SetLiveGames(live, now)
			p.deps.Metrics.RecordLiveGames(p.deps.Live.Name(), len(live))
		}
	}

	p.writeSnapshot(state)
	p.logInfo("poller refreshed roster",
		logging.FieldCount, len(result.Rows),
		"raw_count", len(rows),
		"names", len(names),
		"live_games", len(live),
	)
	return nil
}

func (p *Poller) writeSnapshot(state store.RosterState) {
	if p.deps.Writer == nil {
		return
	}
	_, err := p.deps.Writer.WriteRosterSnapshot(snapshots.RosterSnapshot{
		TakenAt:  state.RefreshedAt,
		Source:   state.Source,
		RawCount: state.RawCount,
		Report:   state.Report,
		Names:    state.Names,
		Rows:     state.Rows,
	})
	if err != nil {
		p.logError("poller snapshot write failed", err)
	}
}

// loadSnapshotOnce serves the latest snapshot when nothing has been refreshed
// in this process yet.
func (p *Poller) loadSnapshotOnce() {
	p.statusMu.Lock()
	if p.snapshotLoaded || !p.status.LastSuccess.IsZero() || p.deps.Snapshots == nil {
		p.statusMu.Unlock()
		return
	}
	p.snapshotLoaded = true
	p.statusMu.Unlock()

	snap, err := p.deps.Snapshots.LoadLatestRoster()
	if err != nil {
		if !errors.Is(err, snapshots.ErrNoSnapshot) {
			p.logError("poller snapshot load failed", err)
		}
		return
	}
	p.deps.Store.SetRoster(store.RosterState{
		Rows:        snap.Rows,
		Names:       snap.Names,
		RawCount:    snap.RawCount,
		Report:      snap.Report,
		RefreshedAt: snap.TakenAt,
		Source:      sourceSnapshot,
	})
	p.logInfo("poller serving roster snapshot", logging.FieldCount, len(snap.Rows), "taken_at", snap.TakenAt)
}

func dropCounts(r roster.Report) map[string]int {
	return map[string]int{
		metrics.ReasonLowMinutes:     r.LowMinutes,
		metrics.ReasonInvalidMinutes: r.InvalidMinutes,
		metrics.ReasonStint:          r.StintRows,
		metrics.ReasonDuplicateTotal: r.DuplicateTotals,
		metrics.ReasonVanished:       len(r.VanishedPlayers),
	}
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.deps.Logger, msg, args...)
}

func (p *Poller) logWarn(msg string, args ...any) {
	logging.Warn(p.deps.Logger, msg, args...)
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	logging.Error(p.deps.Logger, msg, err, attrs...)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.DataProvider {
	return p.deps.Provider
}
