package tgbot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/goserg/bzstats/internal/aggregate"
	"github.com/goserg/bzstats/internal/service"
)

type MapsCommand struct {
	service *service.Service
}

func (c *MapsCommand) Run(_ string, resp *tgbotapi.MessageConfig) error {
	snapshot, err := c.service.Snapshot()
	if err != nil {
		return err
	}
	counts := aggregate.MapPopularity(snapshot.Games)
	if len(counts) == 0 {
		resp.Text = "No games yet"
		return nil
	}
	var buffer strings.Builder
	for i, m := range counts {
		if i >= topSize {
			break
		}
		buffer.WriteString(strconv.Itoa(i + 1))
		buffer.WriteString(". ")
		buffer.WriteString(m.Label)
		buffer.WriteString(" - ")
		buffer.WriteString(strconv.Itoa(m.Count))
		buffer.WriteString("\n")
	}
	resp.Text = buffer.String()
	return nil
}

func (c *MapsCommand) Help() string {
	return "Most played maps"
}
