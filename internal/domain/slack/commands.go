package slack

import (
	"fmt"
	"strings"
)

// Slash command names registered in the Slack app.
const (
	SlashSend   = "/send"
	SlashList   = "/slist"
	SlashDelete = "/sdelete"
)

type CommandType string

const (
	CmdSend   CommandType = "send"
	CmdList   CommandType = "list"
	CmdDelete CommandType = "delete"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	// Text is the trimmed command text, the message to schedule for CmdSend.
	Text   string
	ID     string
	Inline bool
}

// ParseCommand routes a slash command and its text.
//
//	/send <text>             schedule
//	/send help, /send        help
//	/send list [inline]      list
//	/send delete <id>        delete
//	/slist [inline]          list
//	/sdelete <id>            delete
func ParseCommand(command, text string) (*Command, error) {
	text = strings.TrimSpace(text)
	parts := strings.Fields(text)

	var sub string
	if len(parts) > 0 {
		sub = strings.ToLower(parts[0])
	}

	cmd := &Command{Text: text}

	switch {
	case command == SlashList:
		cmd.Type = CmdList
		cmd.Inline = strings.EqualFold(text, "inline")
	case command == SlashSend && sub == "list":
		cmd.Type = CmdList
		cmd.Inline = len(parts) > 1 && strings.EqualFold(parts[1], "inline")
	case command == SlashDelete:
		cmd.Type = CmdDelete
		cmd.ID = text
	case command == SlashSend && sub == "delete":
		cmd.Type = CmdDelete
		if len(parts) > 1 {
			cmd.ID = parts[1]
		}
	case command == SlashSend && (sub == "" || sub == "help"):
		cmd.Type = CmdHelp
	case command == SlashSend:
		cmd.Type = CmdSend
	default:
		return nil, fmt.Errorf("unknown command: %s", command)
	}

	return cmd, nil
}
