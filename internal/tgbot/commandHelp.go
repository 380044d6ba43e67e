package tgbot

import (
	"slices"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type HelpCommand struct {
	commands *Commands
}

func (c *HelpCommand) Run(args string, resp *tgbotapi.MessageConfig) error {
	visible := c.commands.visible()
	name := strings.TrimPrefix(args, "/")
	if visible.Contains(name) {
		resp.Text = c.commands.list[name].Help()
		return nil
	}
	names := visible.ToSlice()
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, commandName := range names {
		b.WriteString("/")
		b.WriteString(commandName)
		b.WriteString("\n")
	}
	b.WriteString("Use /help and a command name for details")
	resp.Text = b.String()
	return nil
}

func (c *HelpCommand) Help() string {
	return "Lists the available commands"
}
