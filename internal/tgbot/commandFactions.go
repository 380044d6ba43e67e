package tgbot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/goserg/bzstats/internal/aggregate"
	"github.com/goserg/bzstats/internal/service"
)

type FactionsCommand struct {
	service *service.Service
}

func (c *FactionsCommand) Run(_ string, resp *tgbotapi.MessageConfig) error {
	snapshot, err := c.service.Snapshot()
	if err != nil {
		return err
	}
	records := aggregate.FactionPerformance(snapshot.Games)
	if len(records) == 0 {
		resp.Text = "No games yet"
		return nil
	}
	var buffer strings.Builder
	for _, r := range records {
		buffer.WriteString(r.Label)
		buffer.WriteString(": ")
		buffer.WriteString(strconv.Itoa(r.Wins))
		buffer.WriteString("-")
		buffer.WriteString(strconv.Itoa(r.Losses))
		buffer.WriteString(" (")
		buffer.WriteString(strconv.FormatFloat(r.WinRate(), 'f', 1, 64))
		buffer.WriteString("%)\n")
	}
	resp.Text = buffer.String()
	return nil
}

func (c *FactionsCommand) Help() string {
	return "Faction wins and losses"
}
