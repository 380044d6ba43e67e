package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/goserg/bzstats/internal/report"
	"github.com/goserg/bzstats/internal/service"
)

var (
	rankMethod   string
	rankMinGames string
	rankMap      string
	rankFaction  string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank commanders",
	Long: `Rank every commander who meets the minimum game requirement.
--min takes a count ("10") or a share of the selected games ("3%").`,
	Args: cobra.NoArgs,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankMethod, "method", "", "wilson, bayesian, composite, volume, winrate, elo or glicko2")
	rankCmd.Flags().StringVar(&rankMinGames, "min", "", "minimum games, a count or a percentage")
	rankCmd.Flags().StringVar(&rankMap, "map", "", "only games on this map")
	rankCmd.Flags().StringVar(&rankFaction, "faction", "", "only games with this faction")
	rankCmd.MarkFlagsMutuallyExclusive("map", "faction")
}

func runRank(cmd *cobra.Command, args []string) error {
	a, snapshot, err := load(cmd.Context())
	if err != nil {
		return err
	}
	p := service.Params{Method: rankMethod, MinGames: rankMinGames}
	switch {
	case rankMap != "":
		p.Dimension, p.Value = "map", rankMap
	case rankFaction != "":
		p.Dimension, p.Value = "faction", rankFaction
	}
	q, err := query(a, p)
	if err != nil {
		return err
	}
	stats, err := a.service.Rankings(q)
	if err != nil {
		return err
	}

	report.PrintSummary(os.Stdout, snapshot)
	cHeader.Fprintf(os.Stdout, "%s  |  min games %s  |  %s\n\n", q.Method.Label(), q.MinGames, q.Period())
	if len(stats) == 0 {
		cWarn.Fprintln(os.Stdout, "No commander meets the minimum game requirement.")
		return nil
	}
	report.PrintRanking(os.Stdout, stats, q.Method)
	return nil
}
