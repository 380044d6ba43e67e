package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goserg/bzstats/internal/tgbot"
	"github.com/goserg/bzstats/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard and, if enabled, the telegram bot",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The dashboard reports a failed load itself and offers a retry.
	if _, err := a.service.Reload(ctx); err != nil {
		a.log.WithError(err).Warn("initial load failed")
	}

	if a.cfg.TgBot.Enabled {
		bot, err := tgbot.New(a.service, a.cfg, a.log)
		if err != nil {
			return err
		}
		go bot.Run(ctx)
	}

	server, err := web.New(a.service, a.cfg.Server, a.log)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			a.log.WithError(err).Error("shutdown")
		}
	}()
	return server.Serve()
}
