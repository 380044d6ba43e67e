package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goserg/bzstats/internal/report"
	"github.com/goserg/bzstats/internal/service"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Show map popularity and game lengths",
	Args:  cobra.NoArgs,
	RunE:  runMaps,
}

var factionsCmd = &cobra.Command{
	Use:   "factions [map]",
	Short: "Show faction win rates, optionally on one map",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFactions,
}

func runMaps(cmd *cobra.Command, args []string) error {
	a, snapshot, err := load(cmd.Context())
	if err != nil {
		return err
	}
	q, err := query(a, service.Params{})
	if err != nil {
		return err
	}
	maps, err := a.service.Maps(q)
	if err != nil {
		return err
	}
	buckets, err := a.service.Durations(q)
	if err != nil {
		return err
	}

	report.PrintSummary(os.Stdout, snapshot)
	cHeader.Fprintf(os.Stdout, "--- Maps (%s) ---\n\n", q.Period())
	report.PrintCounts(os.Stdout, "MAP", maps)
	cHeader.Fprintf(os.Stdout, "\n--- Game length ---\n\n")
	report.PrintDurations(os.Stdout, buckets)
	return nil
}

func runFactions(cmd *cobra.Command, args []string) error {
	a, snapshot, err := load(cmd.Context())
	if err != nil {
		return err
	}
	var p service.Params
	if len(args) == 1 {
		p.Dimension, p.Value = "map", args[0]
	}
	q, err := query(a, p)
	if err != nil {
		return err
	}
	factions, err := a.service.Factions(q)
	if err != nil {
		return err
	}

	report.PrintSummary(os.Stdout, snapshot)
	title := q.Period()
	if q.Value != "" {
		title = fmt.Sprintf("%s, %s", q.Value, title)
	}
	cHeader.Fprintf(os.Stdout, "--- Factions (%s) ---\n\n", title)
	report.PrintRecords(os.Stdout, "FACTION", factions)
	return nil
}
