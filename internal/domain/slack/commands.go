package slack

import (
	"strings"

	"github.com/mensabot/mensa-bot/internal/domain/dates"
)

type CommandType string

const (
	CmdShow        CommandType = "show"
	CmdSubscribe   CommandType = "subscribe"
	CmdUnsubscribe CommandType = "unsubscribe"
	CmdHelp        CommandType = "help"
)

type Command struct {
	Type CommandType
	// Arg is the free text after the command word, passed on to ShowMenu.
	Arg string
	Raw string
}

// ParseCommand reads the text of a /mensa slash command. Anything that is not
// a known command word is a "show" request for that text, so "/mensa
// tomorrow" and "/mensa show tomorrow" are the same.
func ParseCommand(text string) *Command {
	parts := strings.Fields(strings.TrimSpace(text))
	cmd := &Command{
		Type: CmdShow,
		Raw:  text,
	}
	if len(parts) == 0 {
		return cmd
	}

	rest := strings.Join(parts[1:], " ")

	switch strings.ToLower(parts[0]) {
	case "show", "menu", "zeige", "speiseplan":
		cmd.Arg = rest
	case "subscribe", "abonnieren", "sub":
		cmd.Type = CmdSubscribe
	case "unsubscribe", "deabonnieren", "unsub":
		cmd.Type = CmdUnsubscribe
	case "help", "hilfe":
		cmd.Type = CmdHelp
	default:
		cmd.Arg = strings.Join(parts, " ")
	}

	return cmd
}

// GetHelpText lists the vocabulary. cutover is when "today" stops being the default.
func GetHelpText(cutover dates.TimeOfDay) string {
	return `*Available Commands:*

*Menus:*
• ` + "`/mensa`" + ` - Show the next menu (today until ` + cutover.String() + `, then the next day)
• ` + "`/mensa today`" + ` / ` + "`/mensa tomorrow`" + ` - Show today's or tomorrow's menu
• ` + "`/mensa monday`" + ` ... ` + "`/mensa friday`" + ` - Show that weekday of next week
• ` + "`/mensa 24.12.2024`" + ` - Show the menu of a date (dd.mm.yyyy)
• ` + "`/mensa latest`" + ` - Show the most recently updated menu
• ` + "`/mensa refetch [day]`" + ` - Fetch the menu pages again before answering

*Notifications:*
• ` + "`/mensa subscribe`" + ` - Post new menus to this channel
• ` + "`/mensa unsubscribe`" + ` - Stop posting new menus to this channel

German keywords work too: heute, morgen, montag ... freitag, neu.`
}
