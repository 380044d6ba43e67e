package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/goserg/bzstats/internal/report"
	"github.com/goserg/bzstats/internal/service"
)

var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Show one player's roles, months, teammates, maps and factions",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
	a, _, err := load(cmd.Context())
	if err != nil {
		return err
	}
	q, err := query(a, service.Params{})
	if err != nil {
		return err
	}
	r, err := a.service.Player(q, args[0])
	if errors.Is(err, service.ErrPlayerNotFound) {
		cWarn.Fprintf(os.Stdout, "No games found for %q.\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}
	report.PrintPlayer(os.Stdout, r)
	return nil
}
