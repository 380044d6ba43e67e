package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goserg/bzstats/internal/config"
	"github.com/goserg/bzstats/internal/logger"
	"github.com/goserg/bzstats/internal/service"
	"github.com/goserg/bzstats/internal/source"
)

var (
	serverConfigPath string
	botConfigPath    string
	sourceLocation   string
	period           string
)

var (
	cHeader = color.New(color.FgCyan, color.Bold)
	cWarn   = color.New(color.FgYellow)
	cError  = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "bzstats",
	Short: "Battlezone match archive statistics",
	Long:  "Load a match archive and rank commanders, maps, factions and players.",

	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cError.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverConfigPath, "config", config.DefaultServerPath, "path to server config")
	rootCmd.PersistentFlags().StringVar(&botConfigPath, "bot-config", config.DefaultBotPath, "path to telegram bot config")
	rootCmd.PersistentFlags().StringVar(&sourceLocation, "source", "", "archive URL or file, overrides the config")
	rootCmd.PersistentFlags().StringVar(&period, "period", "all", "year to analyse or \"all\"")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(factionsCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(summaryCmd)
}

type app struct {
	cfg     config.Config
	log     *logrus.Logger
	service *service.Service
}

// setup reads the config and builds the service without loading the archive.
func setup() (*app, error) {
	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return nil, err
	}
	if sourceLocation != "" {
		cfg.Source.Location = sourceLocation
	}
	log := logger.New(cfg.Server.LogLevel)

	store := service.NewStore(source.New(cfg.Source.Location), log)
	svc, err := service.New(store, cfg.Analytics, log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, service: svc}, nil
}

// load builds the service and loads the archive once. Skipped records are
// reported on stderr.
func load(ctx context.Context) (*app, *service.Snapshot, error) {
	a, err := setup()
	if err != nil {
		return nil, nil, err
	}
	snapshot, err := a.service.Reload(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", a.cfg.Source.Location, err)
	}
	if n := len(snapshot.Warnings); n > 0 {
		cWarn.Fprintf(os.Stderr, "skipped %d malformed records\n", n)
		for _, w := range snapshot.Warnings {
			a.log.WithField("kind", w.Kind).Debug(w.Error())
		}
	}
	return a, snapshot, nil
}

// query applies the shared filter flags on top of the configured defaults.
func query(a *app, p service.Params) (service.Query, error) {
	q := a.service.Query()
	p.Period = period
	if err := q.Apply(p); err != nil {
		return q, err
	}
	return q, nil
}
