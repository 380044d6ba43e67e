package web

import (
	"strings"

	"github.com/samber/lo"

	"github.com/goserg/bzstats/internal/aggregate"
	"github.com/goserg/bzstats/internal/chart"
	"github.com/goserg/bzstats/internal/domain"
	"github.com/goserg/bzstats/internal/roles"
	"github.com/goserg/bzstats/internal/service"
)

type queryRequest struct {
	Dimension string `query:"dimension"`
	Value     string `query:"value"`
	Period    string `query:"period"`
	Method    string `query:"method"`
	MinGames  string `query:"min"`
	// Charts optionally limits the response to these chart IDs.
	Charts string `query:"charts"`
}

func (r queryRequest) params() service.Params {
	return service.Params{
		Dimension: r.Dimension,
		Value:     r.Value,
		Period:    r.Period,
		Method:    r.Method,
		MinGames:  r.MinGames,
	}
}

func (r queryRequest) targets() []string {
	return lo.Compact(lo.Map(strings.Split(r.Charts, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}

type dashboardResponse struct {
	Summary service.Summary `json:"summary"`
	Charts  []chart.Chart   `json:"charts"`
}

type glicko2DTO struct {
	Rating    float64 `json:"rating"`
	Deviation float64 `json:"deviation"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

type commanderDTO struct {
	Rank             int         `json:"rank"`
	Name             string      `json:"name"`
	Wins             int         `json:"wins"`
	Losses           int         `json:"losses"`
	Total            int         `json:"total"`
	WinRate          float64     `json:"winRate"`
	Wilson           float64     `json:"wilson"`
	Bayesian         float64     `json:"bayesian"`
	VolumeWeighted   float64     `json:"volumeWeighted"`
	Composite        float64     `json:"composite"`
	VolumePercentage float64     `json:"volumePercentage"`
	Elo              float64     `json:"elo,omitempty"`
	Glicko2          *glicko2DTO `json:"glicko2,omitempty"`
	Score            float64     `json:"score"`
}

func newCommanderDTO(s domain.CommanderStat) commanderDTO {
	dto := commanderDTO{
		Rank:             s.Rank,
		Name:             s.Name,
		Wins:             s.Wins,
		Losses:           s.Losses(),
		Total:            s.Total,
		WinRate:          s.WinRate,
		Wilson:           s.WilsonScore,
		Bayesian:         s.BayesianScore,
		VolumeWeighted:   s.VolumeWeightedScore,
		Composite:        s.CompositeScore,
		VolumePercentage: s.VolumePercentage,
		Elo:              s.EloRating,
		Score:            s.Score,
	}
	if g := s.Glicko2Rating; g.Rating != 0 {
		dto.Glicko2 = &glicko2DTO{
			Rating:    g.Rating,
			Deviation: g.Deviation,
			Min:       g.Interval.Min,
			Max:       g.Interval.Max,
		}
	}
	return dto
}

type rankingsResponse struct {
	Method   string         `json:"method"`
	MinGames string         `json:"minGames"`
	Period   string         `json:"period"`
	Bounded  bool           `json:"bounded"`
	Stats    []commanderDTO `json:"stats"`
}

type roleDTO struct {
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winRate"`
}

type recordDTO struct {
	Label   string  `json:"label"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"winRate"`
}

func newRecordDTOs(records []aggregate.Record) []recordDTO {
	return lo.Map(records, func(r aggregate.Record, _ int) recordDTO {
		return recordDTO{Label: r.Label, Wins: r.Wins, Losses: r.Losses, WinRate: r.WinRate()}
	})
}

type countDTO struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type monthDTO struct {
	Month          string  `json:"month"`
	Games          int     `json:"games"`
	Wins           int     `json:"wins"`
	WinRate        float64 `json:"winRate"`
	CommanderGames int     `json:"commanderGames"`
	ThugGames      int     `json:"thugGames"`
	StragglerGames int     `json:"stragglerGames"`
}

type playerResponse struct {
	Name       string        `json:"name"`
	Period     string        `json:"period"`
	Overall    roleDTO       `json:"overall"`
	Commander  roleDTO       `json:"commander"`
	Thug       roleDTO       `json:"thug"`
	Straggler  roleDTO       `json:"straggler"`
	Stats      *commanderDTO `json:"stats,omitempty"`
	Monthly    []monthDTO    `json:"monthly"`
	Teammates  []countDTO    `json:"teammates"`
	Maps       []recordDTO   `json:"maps"`
	Factions   []recordDTO   `json:"factions"`
	HeadToHead []recordDTO   `json:"headToHead"`
}

func newRoleDTO(games, wins int) roleDTO {
	return roleDTO{Games: games, Wins: wins, WinRate: roles.WinRate(wins, games)}
}

func newPlayerResponse(r service.PlayerReport) playerResponse {
	b := r.Breakdown
	resp := playerResponse{
		Name:      r.Name,
		Period:    r.Period,
		Overall:   newRoleDTO(b.Games, b.Wins),
		Commander: newRoleDTO(b.CommanderGames, b.CommanderWins),
		Thug:      newRoleDTO(b.ThugGames, b.ThugWins),
		Straggler: newRoleDTO(b.StragglerGames, b.StragglerWins),
		Monthly: lo.Map(r.Monthly, func(m aggregate.MonthlyRecord, _ int) monthDTO {
			return monthDTO{
				Month: m.Month, Games: m.Games, Wins: m.Wins, WinRate: m.WinRate(),
				CommanderGames: m.CommanderGames, ThugGames: m.ThugGames, StragglerGames: m.StragglerGames,
			}
		}),
		Teammates: lo.Map(r.Teammates, func(c aggregate.Count, _ int) countDTO {
			return countDTO{Label: c.Label, Count: c.Count}
		}),
		Maps:       newRecordDTOs(r.Maps),
		Factions:   newRecordDTOs(r.Factions),
		HeadToHead: newRecordDTOs(r.HeadToHead),
	}
	if r.Commander != nil {
		dto := newCommanderDTO(*r.Commander)
		resp.Stats = &dto
	}
	return resp
}

type reloadResponse struct {
	SnapshotID  string `json:"snapshotId"`
	LastUpdated string `json:"lastUpdated"`
	Games       int    `json:"games"`
	Skipped     int    `json:"skipped"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
