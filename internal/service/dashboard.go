package service

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/goserg/bzstats/internal/aggregate"
	"github.com/goserg/bzstats/internal/chart"
	"github.com/goserg/bzstats/internal/domain"
	"github.com/goserg/bzstats/internal/filter"
	"github.com/goserg/bzstats/internal/ranking"
	"github.com/goserg/bzstats/internal/roles"
)

// Chart IDs are the canvas IDs used by the dashboard page.
const (
	ChartRanking            = "ranking"
	ChartMaps               = "maps"
	ChartFactionPerformance = "faction-performance"
	ChartFactionWinRate     = "faction-winrate"
	ChartFactionChoice      = "faction-choice"
	ChartDurations          = "durations"
	ChartActivity           = "activity"
	ChartPlayerRoles        = "player-roles"
	ChartPlayerWinRate      = "player-winrate"
	ChartPlayerMonthly      = "player-monthly"
	ChartTeammates          = "teammates"
	ChartPlayerMaps         = "player-maps"
	ChartPlayerFactions     = "player-factions"
	ChartHeadToHead         = "head-to-head"
)

const factionChoiceCommanders = 10

func (s *Service) charts(q Query, games []domain.Game) []chart.Chart {
	charts := []chart.Chart{rankingChart(games, q.Method, q.MinGames)}
	switch {
	case q.Dimension == filter.Player && q.Value != "":
		views := roles.Classify(games, q.Value)
		charts = append(charts, s.playerCharts(q.Value, games, views)...)
	case q.Dimension == filter.Map && q.Value != "":
		charts = append(charts,
			factionPerformanceChart(games),
			factionWinRateChart(games),
			factionChoiceChart(games),
		)
	case q.Dimension == filter.Faction && q.Value != "":
		charts = append(charts,
			mapsChart(games),
			factionChoiceChart(games),
		)
	default:
		charts = append(charts,
			mapsChart(games),
			factionPerformanceChart(games),
			factionWinRateChart(games),
			factionChoiceChart(games),
		)
	}
	return append(charts,
		durationChart(games, s.unit),
		activityChart(games),
	)
}

func rankingChart(games []domain.Game, method ranking.Method, minGames ranking.MinGames) chart.Chart {
	stats := ranking.Rank(games, method, minGames)
	title := "Commander ranking (min " + strconv.Itoa(minGames.Resolve(len(games))) + " games)"
	c := chart.New(ChartRanking, title, chart.Bar).
		WithAxis(method.Label()).
		WithLabels(lo.Map(stats, func(s domain.CommanderStat, _ int) string { return s.Name })).
		WithDataset(method.Label(), lo.Map(stats, func(s domain.CommanderStat, _ int) float64 { return s.Score }))
	c.Horizontal = true
	if method.Bounded() {
		c = c.CapAt(100)
	}
	return c
}

func countChart(id, title string, kind chart.Kind, counts []aggregate.Count) chart.Chart {
	return chart.New(id, title, kind).
		WithLabels(lo.Map(counts, func(c aggregate.Count, _ int) string { return c.Label })).
		WithDataset("Games", lo.Map(counts, func(c aggregate.Count, _ int) float64 { return float64(c.Count) }))
}

func recordChart(id, title string, records []aggregate.Record) chart.Chart {
	c := chart.New(id, title, chart.Bar)
	c.Stacked = true
	return c.
		WithLabels(lo.Map(records, func(r aggregate.Record, _ int) string { return r.Label })).
		WithDataset("Wins", lo.Map(records, func(r aggregate.Record, _ int) float64 { return float64(r.Wins) })).
		WithDataset("Losses", lo.Map(records, func(r aggregate.Record, _ int) float64 { return float64(r.Losses) }))
}

func mapsChart(games []domain.Game) chart.Chart {
	return countChart(ChartMaps, "Map popularity", chart.Doughnut, aggregate.MapPopularity(games))
}

func factionPerformanceChart(games []domain.Game) chart.Chart {
	return recordChart(ChartFactionPerformance, "Faction wins and losses", aggregate.FactionPerformance(games))
}

func factionWinRateChart(games []domain.Game) chart.Chart {
	records := aggregate.FactionPerformance(games)
	return chart.New(ChartFactionWinRate, "Faction win rate", chart.Bar).
		WithAxis("Win rate (%)").
		WithLabels(lo.Map(records, func(r aggregate.Record, _ int) string { return r.Label })).
		WithDataset("Win rate (%)", lo.Map(records, func(r aggregate.Record, _ int) float64 { return r.WinRate() })).
		CapAt(100)
}

// factionChoiceChart stacks the faction picks of the most active commanders.
func factionChoiceChart(games []domain.Game) chart.Chart {
	rows := aggregate.FactionChoiceRows(games)
	if len(rows) > factionChoiceCommanders {
		rows = rows[:factionChoiceCommanders]
	}
	var factions []string
	for _, row := range rows {
		for _, f := range row.Factions {
			if !lo.Contains(factions, f.Label) {
				factions = append(factions, f.Label)
			}
		}
	}
	c := chart.New(ChartFactionChoice, "Faction choice by commander", chart.Bar)
	c.Horizontal, c.Stacked = true, true
	c = c.WithLabels(lo.Map(rows, func(r aggregate.FactionUsage, _ int) string { return r.Commander }))
	for _, faction := range factions {
		data := lo.Map(rows, func(r aggregate.FactionUsage, _ int) float64 {
			for _, f := range r.Factions {
				if f.Label == faction {
					return float64(f.Count)
				}
			}
			return 0
		})
		c = c.WithDataset(faction, data)
	}
	return c
}

func durationChart(games []domain.Game, unit aggregate.BareUnit) chart.Chart {
	buckets := aggregate.DurationHistogram(games, unit)
	c := chart.New(ChartDurations, "Game length (minutes)", chart.Bar).
		WithLabels(lo.Map(buckets, func(b aggregate.Bucket, _ int) string { return b.Label })).
		WithDataset("Games", lo.Map(buckets, func(b aggregate.Bucket, _ int) float64 { return float64(b.Count) }))
	// The buckets are always present; the chart is empty when nothing was timed.
	c.Empty = lo.SumBy(buckets, func(b aggregate.Bucket) int { return b.Count }) == 0
	return c
}

func activityChart(games []domain.Game) chart.Chart {
	return countChart(ChartActivity, "Games per month", chart.Line, aggregate.MonthlyActivity(games))
}

func (s *Service) playerCharts(player string, games []domain.Game, views []domain.PlayerGame) []chart.Chart {
	b := roles.Summarize(views)

	rolesChart := chart.New(ChartPlayerRoles, player+": games by role", chart.Doughnut).
		WithLabels([]string{"Commander", "Thug", "Straggler"}).
		WithDataset("Games", []float64{float64(b.CommanderGames), float64(b.ThugGames), float64(b.StragglerGames)})
	rolesChart.Empty = b.Games == 0

	winRate := chart.New(ChartPlayerWinRate, player+": win rate by role", chart.Bar).
		WithAxis("Win rate (%)").
		WithLabels([]string{"Overall", "Commander", "Thug", "Straggler"}).
		WithDataset("Win rate (%)", []float64{
			roles.WinRate(b.Wins, b.Games),
			roles.WinRate(b.CommanderWins, b.CommanderGames),
			roles.WinRate(b.ThugWins, b.ThugGames),
			roles.WinRate(b.StragglerWins, b.StragglerGames),
		}).
		CapAt(100)
	winRate.Empty = b.Games == 0

	monthly := aggregate.MonthlyPerformance(views)
	monthlyChart := chart.New(ChartPlayerMonthly, player+": monthly results", chart.Line).
		WithLabels(lo.Map(monthly, func(m aggregate.MonthlyRecord, _ int) string { return m.Month })).
		WithDataset("Games", lo.Map(monthly, func(m aggregate.MonthlyRecord, _ int) float64 { return float64(m.Games) })).
		WithDataset("Wins", lo.Map(monthly, func(m aggregate.MonthlyRecord, _ int) float64 { return float64(m.Wins) }))

	teammates := countChart(ChartTeammates, player+": most frequent teammates", chart.Bar,
		aggregate.TeammateFrequency(views, player, s.topN))
	teammates.Horizontal = true

	return []chart.Chart{
		rolesChart,
		winRate,
		monthlyChart,
		teammates,
		recordChart(ChartPlayerMaps, player+": results by map", aggregate.PlayerMaps(views)),
		recordChart(ChartPlayerFactions, player+": results by faction as commander", aggregate.PlayerFactions(views)),
		recordChart(ChartHeadToHead, player+": head to head as commander", aggregate.HeadToHead(games, player)),
	}
}
