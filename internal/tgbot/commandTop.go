package tgbot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/goserg/bzstats/internal/domain"
	"github.com/goserg/bzstats/internal/ranking"
	"github.com/goserg/bzstats/internal/service"
)

const topSize = 10

type TopCommand struct {
	service *service.Service
}

func (c *TopCommand) Run(args string, resp *tgbotapi.MessageConfig) error {
	q := c.service.Query()
	if args != "" {
		if err := q.SetRankingMethod(args); err != nil {
			return err
		}
	}
	stats, err := c.service.Rankings(q)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		resp.Text = "No commander has enough games yet"
		return nil
	}

	var buffer strings.Builder
	buffer.WriteString(q.Method.Label())
	buffer.WriteString(", min ")
	buffer.WriteString(q.MinGames.String())
	buffer.WriteString(" games\n")
	for i := range stats {
		if i >= topSize {
			break
		}
		buffer.WriteString(prettifyRank(stats[i].Rank))
		buffer.WriteString(". ")
		buffer.WriteString(stats[i].Name)
		buffer.WriteString(" - ")
		buffer.WriteString(formatScore(stats[i], q.Method))
		buffer.WriteString(" (")
		buffer.WriteString(strconv.Itoa(stats[i].Wins))
		buffer.WriteString("/")
		buffer.WriteString(strconv.Itoa(stats[i].Total))
		buffer.WriteString(")\n")
	}
	resp.Text = buffer.String()
	if args == "" {
		resp.ReplyMarkup = methodKeyboard()
	}
	return nil
}

func formatScore(s domain.CommanderStat, method ranking.Method) string {
	if method == ranking.Glicko2 {
		g := s.Glicko2Rating
		return strconv.Itoa(int(g.Rating)) + " [" + strconv.Itoa(int(g.Interval.Min)) + "-" + strconv.Itoa(int(g.Interval.Max)) + "]"
	}
	return strconv.FormatFloat(s.Score, 'f', 1, 64)
}

func methodKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var row []tgbotapi.KeyboardButton
	var rows [][]tgbotapi.KeyboardButton
	for _, m := range ranking.Methods() {
		row = append(row, tgbotapi.NewKeyboardButton("/top "+string(m)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.OneTimeKeyboard = true
	return keyboard
}

func prettifyRank(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return strconv.Itoa(rank)
	}
}

func (c *TopCommand) Help() string {
	return `Top commanders. Optional ranking method: /top bayesian. Methods: ` + methodList()
}

func methodList() string {
	var names []string
	for _, m := range ranking.Methods() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}
