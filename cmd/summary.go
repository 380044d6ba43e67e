package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/goserg/bzstats/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show what the archive contains",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	a, snapshot, err := load(cmd.Context())
	if err != nil {
		return err
	}
	opts, err := a.service.Options()
	if err != nil {
		return err
	}

	report.PrintSummary(os.Stdout, snapshot)
	cHeader.Fprintln(os.Stdout, "--- Archive ---")
	report.PrintOptions(os.Stdout, opts)
	for _, w := range snapshot.Warnings {
		cWarn.Fprintf(os.Stdout, "  skipped %s\n", w.Error())
	}
	return nil
}
