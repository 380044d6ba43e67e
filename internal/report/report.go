// Package report prints analytics results as text tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/goserg/bzstats/internal/aggregate"
	"github.com/goserg/bzstats/internal/domain"
	"github.com/goserg/bzstats/internal/ranking"
	"github.com/goserg/bzstats/internal/roles"
	"github.com/goserg/bzstats/internal/service"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// PrintRanking prints the ranked commanders. The SCORE column holds the
// value of method.
func PrintRanking(w io.Writer, stats []domain.CommanderStat, method ranking.Method) {
	table := newTable(w)
	table.Header("#", "COMMANDER", "W", "L", "GAMES", "WIN%", "WILSON", "BAYES", "VOLUME", "COMPOSITE", "SHARE", "SCORE")
	for _, s := range stats {
		table.Append(
			strconv.Itoa(s.Rank),
			s.Name,
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses()),
			strconv.Itoa(s.Total),
			pct(s.WinRate),
			fmt.Sprintf("%.1f", s.WilsonScore),
			fmt.Sprintf("%.1f", s.BayesianScore),
			fmt.Sprintf("%.2f", s.VolumeWeightedScore),
			fmt.Sprintf("%.1f", s.CompositeScore),
			pct(s.VolumePercentage),
			score(s, method),
		)
	}
	table.Render()
}

func score(s domain.CommanderStat, method ranking.Method) string {
	if method == ranking.Glicko2 {
		return fmt.Sprintf("%.0f ±%.0f", s.Glicko2Rating.Rating, s.Glicko2Rating.Deviation*2)
	}
	if method.Bounded() {
		return fmt.Sprintf("%.1f", s.Score)
	}
	return fmt.Sprintf("%.2f", s.Score)
}

func PrintCounts(w io.Writer, label string, counts []aggregate.Count) {
	table := newTable(w)
	table.Header(label, "GAMES")
	for _, c := range counts {
		table.Append(c.Label, strconv.Itoa(c.Count))
	}
	table.Render()
}

func PrintRecords(w io.Writer, label string, records []aggregate.Record) {
	table := newTable(w)
	table.Header(label, "W", "L", "WIN%")
	for _, r := range records {
		table.Append(r.Label, strconv.Itoa(r.Wins), strconv.Itoa(r.Losses), pct(r.WinRate()))
	}
	table.Render()
}

func PrintDurations(w io.Writer, buckets []aggregate.Bucket) {
	table := newTable(w)
	table.Header("MINUTES", "GAMES")
	for _, b := range buckets {
		table.Append(b.Label, strconv.Itoa(b.Count))
	}
	table.Render()
}

// PrintPlayer prints the role breakdown followed by the per-month, teammate,
// map and faction tables.
func PrintPlayer(w io.Writer, r service.PlayerReport) {
	fmt.Fprintf(w, "\nPlayer: %s  |  Period: %s\n\n", r.Name, r.Period)

	b := r.Breakdown
	table := newTable(w)
	table.Header("ROLE", "GAMES", "W", "WIN%")
	for _, row := range []struct {
		label       string
		games, wins int
	}{
		{"overall", b.Games, b.Wins},
		{"commander", b.CommanderGames, b.CommanderWins},
		{"thug", b.ThugGames, b.ThugWins},
		{"straggler", b.StragglerGames, b.StragglerWins},
	} {
		table.Append(row.label, strconv.Itoa(row.games), strconv.Itoa(row.wins), pct(roles.WinRate(row.wins, row.games)))
	}
	table.Render()

	if len(r.Monthly) > 0 {
		fmt.Fprintln(w)
		mt := newTable(w)
		mt.Header("MONTH", "GAMES", "W", "WIN%", "CMD", "THUG", "STRAG")
		for _, m := range r.Monthly {
			mt.Append(
				m.Month,
				strconv.Itoa(m.Games),
				strconv.Itoa(m.Wins),
				pct(m.WinRate()),
				strconv.Itoa(m.CommanderGames),
				strconv.Itoa(m.ThugGames),
				strconv.Itoa(m.StragglerGames),
			)
		}
		mt.Render()
	}
	if len(r.Teammates) > 0 {
		fmt.Fprintln(w)
		PrintCounts(w, "TEAMMATE", r.Teammates)
	}
	if len(r.Maps) > 0 {
		fmt.Fprintln(w)
		PrintRecords(w, "MAP", r.Maps)
	}
	if len(r.Factions) > 0 {
		fmt.Fprintln(w)
		PrintRecords(w, "FACTION", r.Factions)
	}
	if len(r.HeadToHead) > 0 {
		fmt.Fprintln(w)
		PrintRecords(w, "OPPONENT", r.HeadToHead)
	}
}

// PrintSummary prints a one-line header describing the loaded data.
func PrintSummary(w io.Writer, s *service.Snapshot) {
	fmt.Fprintf(w, "\nGames: %d  |  Skipped: %d  |  Last updated: %s  |  Snapshot: %s\n\n",
		len(s.Games), len(s.Warnings), s.LastUpdated, s.ID.String()[:8])
}

func PrintOptions(w io.Writer, o service.Options) {
	years := make([]string, 0, len(o.Years))
	for _, y := range o.Years {
		years = append(years, strconv.Itoa(y))
	}
	table := newTable(w)
	table.Header("", "COUNT", "VALUES")
	table.Append("years", strconv.Itoa(len(o.Years)), strings.Join(years, ", "))
	table.Append("players", strconv.Itoa(len(o.Players)), "")
	table.Append("maps", strconv.Itoa(len(o.Maps)), strings.Join(o.Maps, ", "))
	table.Append("factions", strconv.Itoa(len(o.Factions)), strings.Join(o.Factions, ", "))
	table.Render()
}
