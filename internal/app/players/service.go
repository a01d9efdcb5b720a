package players

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-insights-service/internal/logging"
	"github.com/preston-bernstein/nba-insights-service/internal/metrics"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/resolver"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
	"github.com/preston-bernstein/nba-insights-service/internal/store"
)

// suggestionCutoff is the looser threshold used to offer near misses.
const suggestionCutoff = 0.3

var (
	ErrBlankQuery       = errors.New("query must not be blank")
	ErrNoMatch          = errors.New("no player matched the query")
	ErrNotReady         = errors.New("roster not loaded yet")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrInvalidSeason    = errors.New("season must look like 2022-23")
	ErrShotsUnavailable = errors.New("shot logs are not configured")
)

// Store exposes the latest refreshed roster.
type Store interface {
	Roster() (store.RosterState, bool)
}

// Service answers player questions over the refreshed roster.
type Service struct {
	store    Store
	profiles providers.ProfileProvider
	resolver *resolver.Resolver
	suggest  *resolver.Resolver
	teams    *teams.Directory
	metrics  *metrics.Recorder
	logger   *slog.Logger

	shots      providers.ShotProvider
	shotSeason string
}

// Option customizes a Service.
type Option func(*Service)

// WithShots serves shot logs from p. An empty season leaves requests
// without ?season= to fail validation.
func WithShots(p providers.ShotProvider, defaultSeason string) Option {
	return func(s *Service) {
		s.shots = p
		s.shotSeason = defaultSeason
	}
}

// NewService constructs a Service. profiles and recorder may be nil; a nil
// directory uses the built-in team list.
func NewService(st Store, profiles providers.ProfileProvider, res *resolver.Resolver, dir *teams.Directory, recorder *metrics.Recorder, logger *slog.Logger, opts ...Option) (*Service, error) {
	if res == nil {
		var err error
		if res, err = resolver.New(); err != nil {
			return nil, err
		}
	}
	suggest, err := resolver.New(resolver.WithCutoff(min(suggestionCutoff, res.Cutoff())), resolver.WithFold(res.Folds()))
	if err != nil {
		return nil, err
	}
	if dir == nil {
		dir = teams.NewDirectory("")
	}
	svc := &Service{
		store:    st,
		profiles: profiles,
		resolver: res,
		suggest:  suggest,
		teams:    dir,
		metrics:  recorder,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Roster returns the latest refreshed roster.
func (s *Service) Roster() (store.RosterState, error) {
	state, ok := s.store.Roster()
	if !ok {
		return store.RosterState{}, ErrNotReady
	}
	return state, nil
}

// Names returns the canonical name directory.
func (s *Service) Names() ([]string, error) {
	state, err := s.Roster()
	if err != nil {
		return nil, err
	}
	return state.Names, nil
}

// Resolve maps query onto the name directory. On ErrNoMatch the returned
// Resolution still carries suggestions.
func (s *Service) Resolve(query string) (players.Resolution, error) {
	state, err := s.Roster()
	if err != nil {
		return players.Resolution{}, err
	}
	return s.resolveIn(query, state.Names)
}

func (s *Service) resolveIn(query string, candidates []string) (players.Resolution, error) {
	start := time.Now()
	res := players.Resolution{Query: query}
	if strings.TrimSpace(query) == "" {
		s.metrics.RecordResolution(metrics.OutcomeRejected, time.Since(start))
		return res, ErrBlankQuery
	}

	best, ok := s.resolver.Best(query, candidates)
	if !ok {
		for _, m := range s.suggest.Matches(query, candidates, resolver.DefaultSuggestions) {
			res.Suggestions = append(res.Suggestions, players.Suggestion{Name: m.Name, Score: m.Score})
		}
		s.metrics.RecordResolution(metrics.OutcomeNoMatch, time.Since(start))
		return res, ErrNoMatch
	}

	res.Name = best.Name
	res.Score = best.Score
	res.PathSegment = url.PathEscape(best.Name)
	s.metrics.RecordResolution(metrics.OutcomeMatched, time.Since(start))
	return res, nil
}

// Profile resolves query and returns the upstream profile, falling back to the
// player's clean roster row when the upstream has nothing.
func (s *Service) Profile(ctx context.Context, query string) (players.Profile, players.Resolution, error) {
	state, err := s.Roster()
	if err != nil {
		return players.Profile{}, players.Resolution{}, err
	}
	res, err := s.resolveIn(query, state.Names)
	if err != nil {
		return players.Profile{}, res, err
	}

	row, hasRow := roster.Find(state.Rows, res.Name)
	profile, err := s.fetchProfile(ctx, res.Name)
	switch {
	case err == nil:
		if len(profile.Stats) == 0 && hasRow {
			profile.Stats = row.Stats
		}
		if profile.Team == "" && hasRow {
			profile.Team = row.Team
		}
	case hasRow:
		profile = profileFromRow(row)
	default:
		return players.Profile{}, res, ErrPlayerNotFound
	}

	if profile.Name == "" {
		profile.Name = res.Name
	}
	if team, ok := s.teams.Lookup(profile.Team); ok {
		profile.TeamName = team.FullName
		profile.TeamLogo = team.LogoURL
	}
	if profile.ImageURL == "" {
		if img, imgErr := s.fetchImage(ctx, res.Name); imgErr == nil {
			profile.ImageURL = img
		}
	}
	return profile, res, nil
}

// ImageURL resolves query and returns the player's headshot URL.
func (s *Service) ImageURL(ctx context.Context, query string) (string, players.Resolution, error) {
	res, err := s.Resolve(query)
	if err != nil {
		return "", res, err
	}
	img, err := s.fetchImage(ctx, res.Name)
	if err != nil {
		if errors.Is(err, providers.ErrNotFound) {
			return "", res, ErrPlayerNotFound
		}
		return "", res, err
	}
	return img, res, nil
}

// Compare resolves both queries against the clean table and compares them.
func (s *Service) Compare(a, b string) (roster.Comparison, error) {
	state, err := s.Roster()
	if err != nil {
		return roster.Comparison{}, err
	}
	names := roster.Names(state.Rows)
	resA, err := s.resolveIn(a, names)
	if err != nil {
		return roster.Comparison{}, err
	}
	resB, err := s.resolveIn(b, names)
	if err != nil {
		return roster.Comparison{}, err
	}
	return roster.Compare(state.Rows, resA.Name, resB.Name)
}

// Leaders ranks the clean table by category.
func (s *Service) Leaders(category string, limit int) (roster.Category, []roster.Leader, error) {
	cat, err := roster.LookupCategory(category)
	if err != nil {
		return roster.Category{}, nil, err
	}
	state, err := s.Roster()
	if err != nil {
		return cat, nil, err
	}
	leaders, err := roster.Leaders(state.Rows, cat.Stat, limit)
	return cat, leaders, err
}

// Positions groups the clean table by single position and keeps the top
// limit players per position ranked by category.
func (s *Service) Positions(category string, limit int) (roster.Category, []roster.PositionGroup, error) {
	cat, err := roster.LookupCategory(category)
	if err != nil {
		return roster.Category{}, nil, err
	}
	state, err := s.Roster()
	if err != nil {
		return cat, nil, err
	}
	groups, err := roster.TopByPosition(state.Rows, cat.Stat, limit)
	return cat, groups, err
}

// Shots resolves query and returns the player's shot log for season. An empty
// season uses the configured default.
func (s *Service) Shots(ctx context.Context, query, season string) (players.ShotChart, players.Resolution, error) {
	res, err := s.Resolve(query)
	if err != nil {
		return players.ShotChart{}, res, err
	}
	season = strings.TrimSpace(season)
	if season == "" {
		season = s.shotSeason
	}
	if !players.ValidSeason(season) {
		return players.ShotChart{}, res, ErrInvalidSeason
	}
	if s.shots == nil {
		return players.ShotChart{}, res, ErrShotsUnavailable
	}
	chart, err := s.shots.FetchShots(ctx, res.Name, season)
	if err != nil {
		if errors.Is(err, providers.ErrNotFound) {
			return players.ShotChart{}, res, ErrPlayerNotFound
		}
		return players.ShotChart{}, res, err
	}
	if chart.Player == "" {
		chart.Player = res.Name
	}
	logging.Debug(logging.FromContext(ctx, s.logger), "shot log served",
		logging.FieldPlayer, chart.Player,
		logging.FieldSeason, season,
		logging.FieldCount, chart.Attempts,
	)
	return chart, res, nil
}

func (s *Service) fetchProfile(ctx context.Context, name string) (players.Profile, error) {
	if s.profiles == nil {
		return players.Profile{}, providers.ErrNotFound
	}
	profile, err := s.profiles.FetchProfile(ctx, name)
	if err != nil && !errors.Is(err, providers.ErrNotFound) {
		logging.Warn(logging.FromContext(ctx, s.logger), "profile lookup failed, using roster row",
			logging.FieldPlayer, name,
			logging.FieldError, err,
		)
	}
	return profile, err
}

func (s *Service) fetchImage(ctx context.Context, name string) (string, error) {
	if s.profiles == nil {
		return "", providers.ErrNotFound
	}
	return s.profiles.FetchImageURL(ctx, name)
}

func profileFromRow(row roster.SeasonRow) players.Profile {
	return players.Profile{
		Name:     row.Player,
		Team:     row.Team,
		Position: row.Position,
		Stats:    row.Stats,
		Source:   "roster",
	}
}
