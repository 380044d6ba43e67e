package tgbot

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/goserg/bzstats/internal/service"
)

type Command interface {
	Run(args string, resp *tgbotapi.MessageConfig) error
	Help() string
}

type Commands struct {
	list map[string]Command
	// aliases are accepted but left out of /help.
	aliases mapset.Set[string]
}

func NewCommands(svc *service.Service) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":     hc,
			"start":    hc,
			"top":      &TopCommand{service: svc},
			"info":     &InfoCommand{service: svc},
			"maps":     &MapsCommand{service: svc},
			"factions": &FactionsCommand{service: svc},
		},
		aliases: mapset.NewSet("start"),
	}
	hc.commands = &uc
	return &uc
}

func (uc *Commands) RunCommand(cmd string, args string, resp *tgbotapi.MessageConfig) error {
	command, ok := uc.list[strings.ToLower(cmd)]
	if !ok {
		return ErrBadRequest
	}
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	return command.Run(strings.TrimSpace(args), resp)
}

func (uc *Commands) visible() mapset.Set[string] {
	names := mapset.NewSet[string]()
	for name := range uc.list {
		names.Add(name)
	}
	return names.Difference(uc.aliases)
}
