package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goserg/bzstats/internal/aggregate"
	"github.com/goserg/bzstats/internal/chart"
	"github.com/goserg/bzstats/internal/config"
	"github.com/goserg/bzstats/internal/domain"
	"github.com/goserg/bzstats/internal/filter"
	"github.com/goserg/bzstats/internal/ranking"
	"github.com/goserg/bzstats/internal/roles"
)

var ErrPlayerNotFound = errors.New("player not found")

type Service struct {
	store    *Store
	log      logrus.FieldLogger
	unit     aggregate.BareUnit
	topN     int
	defaults Query
}

func New(store *Store, cfg config.Analytics, log logrus.FieldLogger) (*Service, error) {
	method, err := ranking.ParseMethod(cfg.DefaultMethod)
	if err != nil {
		return nil, fmt.Errorf("default_method: %w", err)
	}
	minGames, err := ranking.ParseMinGames(cfg.DefaultMinGames)
	if err != nil {
		return nil, fmt.Errorf("default_min_games: %w", err)
	}
	unit, err := aggregate.ParseBareUnit(cfg.BareTimeUnit)
	if err != nil {
		return nil, fmt.Errorf("bare_time_unit: %w", err)
	}
	return &Service{
		store:    store,
		log:      log.WithField("name", "service"),
		unit:     unit,
		topN:     cfg.TeammateTopN,
		defaults: NewQuery(method, minGames),
	}, nil
}

// Query returns a fresh selection with the configured defaults.
func (s *Service) Query() Query {
	return s.defaults
}

func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	return s.store.Load(ctx)
}

func (s *Service) Snapshot() (*Snapshot, error) {
	return s.store.Current()
}

// resolve replaces the filter value with the spelling used in the games.
func (s *Service) resolve(q Query) Query {
	names := s.store.Names()
	var (
		found string
		ok    bool
	)
	switch q.Dimension {
	case filter.Player:
		found, ok = names.GetPlayerByName(q.Value)
	case filter.Map:
		found, ok = names.GetMapByName(q.Value)
	case filter.Faction:
		found, ok = names.GetFactionByName(q.Value)
	}
	if ok {
		q.Value = found
	}
	return q
}

func (s *Service) games(q Query) (*Snapshot, Query, []domain.Game, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return nil, q, nil, err
	}
	q = s.resolve(q)
	return snapshot, q, q.Filter().Apply(snapshot.Games), nil
}

func (s *Service) Rankings(q Query) ([]domain.CommanderStat, error) {
	_, q, games, err := s.games(q)
	if err != nil {
		return nil, err
	}
	return ranking.Rank(games, q.Method, q.MinGames), nil
}

func (s *Service) Maps(q Query) ([]aggregate.Count, error) {
	_, q, games, err := s.games(q)
	if err != nil {
		return nil, err
	}
	return aggregate.MapPopularity(games), nil
}

func (s *Service) Factions(q Query) ([]aggregate.Record, error) {
	_, q, games, err := s.games(q)
	if err != nil {
		return nil, err
	}
	return aggregate.FactionPerformance(games), nil
}

// Durations buckets the selected games by length. Games without a
// readable time are left out.
func (s *Service) Durations(q Query) ([]aggregate.Bucket, error) {
	_, q, games, err := s.games(q)
	if err != nil {
		return nil, err
	}
	return aggregate.DurationHistogram(games, s.unit), nil
}

// Summary describes what a dashboard was built from.
type Summary struct {
	SnapshotID  uuid.UUID `json:"snapshotId"`
	LoadedAt    time.Time `json:"loadedAt"`
	LastUpdated string    `json:"lastUpdated"`
	Dimension   string    `json:"dimension"`
	Value       string    `json:"value"`
	Period      string    `json:"period"`
	Method      string    `json:"method"`
	MinGames    string    `json:"minGames"`
	Games       int       `json:"games"`
	Skipped     int       `json:"skipped"`
}

// Dashboard builds every chart for the query and publishes them to surface.
func (s *Service) Dashboard(q Query, surface chart.Surface) (Summary, error) {
	snapshot, q, games, err := s.games(q)
	if err != nil {
		return Summary{}, err
	}
	charts := s.charts(q, games)
	if err := chart.Publish(surface, charts, s.log); err != nil {
		return Summary{}, err
	}
	return Summary{
		SnapshotID:  snapshot.ID,
		LoadedAt:    snapshot.LoadedAt,
		LastUpdated: snapshot.LastUpdated,
		Dimension:   string(q.Dimension),
		Value:       q.Value,
		Period:      q.Period(),
		Method:      string(q.Method),
		MinGames:    q.MinGames.String(),
		Games:       len(games),
		Skipped:     len(snapshot.Warnings),
	}, nil
}

type PlayerReport struct {
	Name       string
	Period     string
	Breakdown  roles.Breakdown
	Commander  *domain.CommanderStat
	Monthly    []aggregate.MonthlyRecord
	Teammates  []aggregate.Count
	Maps       []aggregate.Record
	Factions   []aggregate.Record
	HeadToHead []aggregate.Record
}

// Player reports one player's results over the query's period. The player
// is looked up case-insensitively.
func (s *Service) Player(q Query, name string) (PlayerReport, error) {
	q.Dimension, q.Value = filter.Player, name
	_, q, games, err := s.games(q)
	if err != nil {
		return PlayerReport{}, err
	}
	if len(games) == 0 {
		return PlayerReport{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
	}
	views := roles.Classify(games, q.Value)
	report := PlayerReport{
		Name:       q.Value,
		Period:     q.Period(),
		Breakdown:  roles.Summarize(views),
		Monthly:    aggregate.MonthlyPerformance(views),
		Teammates:  aggregate.TeammateFrequency(views, q.Value, s.topN),
		Maps:       aggregate.PlayerMaps(views),
		Factions:   aggregate.PlayerFactions(views),
		HeadToHead: aggregate.HeadToHead(games, q.Value),
	}
	for _, stat := range ranking.Rank(games, q.Method, ranking.MinGames{Count: 1}) {
		if stat.Name == q.Value {
			report.Commander = &stat
			break
		}
	}
	return report, nil
}

type Options struct {
	LastUpdated string   `json:"lastUpdated"`
	Years       []int    `json:"years"`
	Players     []string `json:"players"`
	Maps        []string `json:"maps"`
	Factions    []string `json:"factions"`
	Methods     []string `json:"methods"`
	Dimensions  []string `json:"dimensions"`
}

// Options lists the values a dashboard selection can take.
func (s *Service) Options() (Options, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return Options{}, err
	}
	names := s.store.Names()
	opts := Options{
		LastUpdated: snapshot.LastUpdated,
		Years:       names.Years(),
		Players:     names.Players(),
		Maps:        names.Maps(),
		Factions:    names.Factions(),
		Dimensions: []string{
			string(filter.General), string(filter.Player),
			string(filter.Map), string(filter.Faction),
		},
	}
	for _, m := range ranking.Methods() {
		opts.Methods = append(opts.Methods, string(m))
	}
	return opts, nil
}
