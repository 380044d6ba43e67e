package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/bzstats/internal/chart"
	"github.com/goserg/bzstats/internal/config"
	"github.com/goserg/bzstats/internal/filter"
	"github.com/goserg/bzstats/internal/ingest"
	"github.com/goserg/bzstats/internal/ranking"
	"github.com/goserg/bzstats/internal/source"
)

type fakeLoader struct {
	data []byte
	err  error
}

func (f *fakeLoader) Load(context.Context) ([]byte, error) {
	return f.data, f.err
}

func (f *fakeLoader) Location() string {
	return "testdata/games.json"
}

func fixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/games.json")
	require.NoError(t, err)
	return data
}

func newService(t *testing.T, loader Loader) *Service {
	t.Helper()
	log, _ := test.NewNullLogger()
	svc, err := New(NewStore(loader, log), config.Default().Analytics, log)
	require.NoError(t, err)
	return svc
}

func loadedService(t *testing.T) *Service {
	t.Helper()
	svc := newService(t, &fakeLoader{data: fixture(t)})
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)
	return svc
}

func chartIDs(charts []chart.Chart) []string {
	ids := make([]string, 0, len(charts))
	for _, c := range charts {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestStoreLoad(t *testing.T) {
	svc := newService(t, &fakeLoader{data: fixture(t)})
	_, err := svc.Snapshot()
	require.ErrorIs(t, err, ErrNotLoaded)

	snapshot, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.Games, 8)
	assert.Equal(t, "2024-06-03 21:00", snapshot.LastUpdated)
	require.Len(t, snapshot.Warnings, 1)
	assert.Equal(t, ingest.KindBadCommanders, snapshot.Warnings[0].Kind)
	assert.Equal(t, 2023, snapshot.Games[0].Year, "years iterate in ascending order")

	current, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, snapshot.ID, current.ID)
}

func TestStoreLoadFailure(t *testing.T) {
	loader := &fakeLoader{data: fixture(t)}
	svc := newService(t, loader)
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)

	loader.err = fmt.Errorf("%w: status 500", source.ErrLoad)
	_, err = svc.Reload(context.Background())
	require.ErrorIs(t, err, source.ErrLoad)

	_, err = svc.Snapshot()
	assert.ErrorIs(t, err, source.ErrLoad)
	_, err = svc.Rankings(svc.Query())
	assert.ErrorIs(t, err, source.ErrLoad)
}

func TestStoreLoadInvalidDocument(t *testing.T) {
	svc := newService(t, &fakeLoader{data: []byte("{not json")})
	_, err := svc.Reload(context.Background())
	assert.ErrorIs(t, err, source.ErrLoad)
	assert.ErrorIs(t, err, ingest.ErrInvalidJSON)
}

func TestNewRejectsBadDefaults(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := NewStore(&fakeLoader{}, log)

	cfg := config.Default().Analytics
	cfg.DefaultMethod = "median"
	_, err := New(store, cfg, log)
	assert.ErrorIs(t, err, ranking.ErrUnknownMethod)

	cfg = config.Default().Analytics
	cfg.BareTimeUnit = "hours"
	_, err = New(store, cfg, log)
	assert.Error(t, err)
}

func TestQuery(t *testing.T) {
	q := DefaultQuery()
	assert.Equal(t, filter.General, q.Dimension)
	assert.Equal(t, "all", q.Period())
	assert.Equal(t, ranking.Wilson, q.Method)
	assert.Equal(t, "3%", q.MinGames.String())

	require.NoError(t, q.Apply(Params{Dimension: "map", Value: " Dustbowl ", Period: "2024", Method: "bayesian", MinGames: "2"}))
	assert.Equal(t, filter.Filter{Year: 2024, Dimension: filter.Map, Value: "Dustbowl"}, q.Filter())
	assert.Equal(t, ranking.Bayesian, q.Method)
	assert.Equal(t, "2024", q.Period())

	q.ResetFilters()
	assert.Equal(t, DefaultQuery(), q)
}

func TestQueryApplyReportsEveryBadField(t *testing.T) {
	q := DefaultQuery()
	err := q.Apply(Params{Dimension: "team", Period: "last year", MinGames: "lots"})
	require.ErrorIs(t, err, ErrInvalidQuery)
	assert.ErrorIs(t, err, filter.ErrUnknownDimension)
	assert.ErrorIs(t, err, filter.ErrBadPeriod)
	assert.ErrorIs(t, err, ranking.ErrBadMinGames)
}

func TestRankings(t *testing.T) {
	svc := loadedService(t)
	stats, err := svc.Rankings(svc.Query())
	require.NoError(t, err)
	require.Len(t, stats, 2, "Carol and Dan are below the minimum of 5 games")
	assert.Equal(t, "Alice", stats[0].Name)
	assert.Equal(t, 5, stats[0].Wins)
	assert.Equal(t, 7, stats[0].Total)
	assert.Equal(t, "Bob", stats[1].Name)
	assert.Equal(t, 2, stats[1].Wins)
}

func TestMapsAndDurations(t *testing.T) {
	svc := loadedService(t)
	q := svc.Query()
	require.NoError(t, q.SetTimePeriod("2024"))

	maps, err := svc.Maps(q)
	require.NoError(t, err)
	require.Len(t, maps, 2)
	assert.Equal(t, "Dustbowl", maps[0].Label)
	assert.Equal(t, 4, maps[0].Count)

	buckets, err := svc.Durations(q)
	require.NoError(t, err)
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, 3, total)

	factions, err := svc.Factions(q)
	require.NoError(t, err)
	assert.NotEmpty(t, factions)
}

func TestAggregatesBeforeLoad(t *testing.T) {
	svc := newService(t, &fakeLoader{data: fixture(t)})
	_, err := svc.Maps(svc.Query())
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestDashboardGeneral(t *testing.T) {
	svc := loadedService(t)
	surface := chart.NewCollector()
	q := svc.Query()
	require.NoError(t, q.SetTimePeriod("2024"))

	summary, err := svc.Dashboard(q, surface)
	require.NoError(t, err)
	assert.Equal(t, 7, summary.Games)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, "2024", summary.Period)
	assert.Equal(t, []string{
		ChartRanking, ChartMaps, ChartFactionPerformance, ChartFactionWinRate,
		ChartFactionChoice, ChartDurations, ChartActivity,
	}, chartIDs(surface.Charts()))

	rank := surface.Charts()[0]
	assert.Equal(t, []string{"Alice", "Bob"}, rank.Labels)
	require.NotNil(t, rank.Scale.Max)
	assert.Equal(t, 100.0, *rank.Scale.Max)

	durations := surface.Charts()[5]
	assert.Equal(t, []float64{0, 0, 1, 1, 1, 0, 0, 0}, durations.Datasets[0].Data)
	assert.False(t, durations.Empty)

	activity := surface.Charts()[6]
	assert.Equal(t, []string{"2024-May", "2024-June"}, activity.Labels)
}

func TestDashboardUnboundedMethod(t *testing.T) {
	svc := loadedService(t)
	surface := chart.NewCollector(ChartRanking)
	q := svc.Query()
	require.NoError(t, q.SetRankingMethod("volume"))

	_, err := svc.Dashboard(q, surface)
	require.NoError(t, err)
	require.Len(t, surface.Charts(), 1)
	assert.Nil(t, surface.Charts()[0].Scale.Max)
}

func TestDashboardPlayer(t *testing.T) {
	svc := loadedService(t)
	surface := chart.NewCollector()
	q := svc.Query()
	require.NoError(t, q.Apply(Params{Dimension: "player", Value: "carol"}))

	summary, err := svc.Dashboard(q, surface)
	require.NoError(t, err)
	assert.Equal(t, "Carol", summary.Value)
	assert.Equal(t, 5, summary.Games)
	assert.Contains(t, chartIDs(surface.Charts()), ChartPlayerRoles)
	assert.Contains(t, chartIDs(surface.Charts()), ChartTeammates)
	assert.NotContains(t, chartIDs(surface.Charts()), ChartMaps)
}

func TestDashboardNoMatches(t *testing.T) {
	svc := loadedService(t)
	surface := chart.NewCollector()
	q := svc.Query()
	require.NoError(t, q.Apply(Params{Dimension: "map", Value: "Nowhere"}))

	summary, err := svc.Dashboard(q, surface)
	require.NoError(t, err)
	assert.Zero(t, summary.Games)
	for _, c := range surface.Charts() {
		assert.True(t, c.Empty, c.ID)
	}
}

func TestPlayer(t *testing.T) {
	svc := loadedService(t)
	report, err := svc.Player(svc.Query(), "CAROL")
	require.NoError(t, err)
	assert.Equal(t, "Carol", report.Name)

	b := report.Breakdown
	assert.Equal(t, 5, b.Games)
	assert.Equal(t, 4, b.Wins)
	assert.Equal(t, 1, b.CommanderGames)
	assert.Equal(t, 3, b.ThugGames)
	assert.Equal(t, 1, b.StragglerGames)

	require.NotEmpty(t, report.Teammates)
	assert.Equal(t, "Alice", report.Teammates[0].Label)
	assert.Equal(t, 4, report.Teammates[0].Count)

	require.NotNil(t, report.Commander)
	assert.Equal(t, 1, report.Commander.Wins)
	require.Len(t, report.HeadToHead, 1)
	assert.Equal(t, "Dan", report.HeadToHead[0].Label)
}

func TestPlayerNotFound(t *testing.T) {
	svc := loadedService(t)
	_, err := svc.Player(svc.Query(), "Zed")
	assert.True(t, errors.Is(err, ErrPlayerNotFound))
}

func TestOptions(t *testing.T) {
	svc := loadedService(t)
	opts, err := svc.Options()
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2023}, opts.Years)
	assert.Equal(t, []string{"Alice", "Bob", "Carol", "Dan", "Eve"}, opts.Players)
	assert.Equal(t, []string{"Canyon", "Dustbowl", "Ice Field"}, opts.Maps)
	assert.Equal(t, []string{"Hadean", "I.S.D.F", "Scion"}, opts.Factions)
	assert.Contains(t, opts.Methods, "glicko2")
}
