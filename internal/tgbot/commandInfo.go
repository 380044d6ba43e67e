package tgbot

import (
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/goserg/bzstats/internal/roles"
	"github.com/goserg/bzstats/internal/service"
)

type InfoCommand struct {
	service *service.Service
}

func (c *InfoCommand) Run(args string, resp *tgbotapi.MessageConfig) error {
	if args == "" {
		return errors.New(`put the player name after /info, for example "/info alice"`)
	}
	report, err := c.service.Player(c.service.Query(), args)
	if err != nil {
		return err
	}
	resp.Text = printPlayer(report)
	return nil
}

func (c *InfoCommand) Help() string {
	return `Player summary. Usage: /info and the player name.`
}

func printPlayer(r service.PlayerReport) string {
	b := r.Breakdown
	var buf strings.Builder
	buf.WriteString("Name: ")
	buf.WriteString(r.Name)
	buf.WriteString("\n")
	writeRole(&buf, "Games", b.Games, b.Wins)
	writeRole(&buf, "As commander", b.CommanderGames, b.CommanderWins)
	writeRole(&buf, "As thug", b.ThugGames, b.ThugWins)
	writeRole(&buf, "As straggler", b.StragglerGames, b.StragglerWins)
	if r.Commander != nil {
		buf.WriteString("Wilson score: ")
		buf.WriteString(strconv.FormatFloat(r.Commander.WilsonScore, 'f', 1, 64))
		buf.WriteString("\n")
	}
	if len(r.Teammates) > 0 {
		buf.WriteString("Plays most with: ")
		buf.WriteString(r.Teammates[0].Label)
		buf.WriteString(" (")
		buf.WriteString(strconv.Itoa(r.Teammates[0].Count))
		buf.WriteString(")\n")
	}
	if len(r.Maps) > 0 {
		buf.WriteString("Favourite map: ")
		buf.WriteString(r.Maps[0].Label)
		buf.WriteString("\n")
	}
	return strings.TrimRight(buf.String(), "\n")
}

func writeRole(buf *strings.Builder, label string, games, wins int) {
	if games == 0 {
		return
	}
	buf.WriteString(label)
	buf.WriteString(": ")
	buf.WriteString(strconv.Itoa(games))
	buf.WriteString(", won ")
	buf.WriteString(strconv.Itoa(wins))
	buf.WriteString(" (")
	buf.WriteString(strconv.FormatFloat(roles.WinRate(wins, games), 'f', 0, 64))
	buf.WriteString("%)\n")
}
