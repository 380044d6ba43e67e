package tgbot

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/goserg/bzstats/internal/config"
	"github.com/goserg/bzstats/internal/service"
)

var ErrBadRequest = errors.New("unknown command, see /help")

type Bot struct {
	bot *tgbotapi.BotAPI
	log logrus.FieldLogger

	commands *Commands
}

func New(svc *service.Service, cfg config.Config, log logrus.FieldLogger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("telegram api token: %w", err)
	}
	bot.Debug = cfg.Server.Debug
	return newBot(bot, svc, log), nil
}

func newBot(api *tgbotapi.BotAPI, svc *service.Service, log logrus.FieldLogger) *Bot {
	return &Bot{
		bot:      api,
		log:      log.WithField("name", "tg_bot"),
		commands: NewCommands(svc),
	}
}

// Run polls for updates until ctx is done.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	b.log.WithField("bot", b.bot.Self.UserName).Info("bot started")

	for {
		select {
		case <-ctx.Done():
			b.bot.StopReceivingUpdates()
			b.log.Info("bot stopped")
			return
		case update := <-updates:
			b.handleMessage(update)
		}
	}
}

func (b *Bot) handleMessage(update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}
	log := b.log.WithFields(logrus.Fields{
		"chat_id": update.Message.Chat.ID,
		"text":    update.Message.Text,
	})

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	err := b.commands.RunCommand(update.Message.Command(), update.Message.CommandArguments(), &msg)
	if err != nil {
		log.WithError(err).Debug("command failed")
		msg.Text = err.Error()
	}
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}
