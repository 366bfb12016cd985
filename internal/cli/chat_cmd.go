package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/tracklyy/helpdesk-client/internal/core/assistant"
	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// chat runs the assistant REPL. Login is optional: the informational rules
// work anonymously, and the reminder rules answer with a login prompt when
// no identity is present.
func (cli *CLI) chat(ctx context.Context) error {
	identity, _ := cli.auth.Current()

	role := domain.RoleStudent
	if identity.IsAdmin() {
		role = domain.RoleAdmin
	}

	engine := assistant.NewEngine(role, cli.reminders, cli.logger)
	conversation := assistant.NewConversation(role)
	for _, msg := range conversation.Messages() {
		cli.renderChatMessage(msg)
	}
	fmt.Fprintln(cli.out, `(type "exit" to leave)`)

	scanner := bufio.NewScanner(cli.in)
	for {
		fmt.Fprint(cli.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		conversation.Append(assistant.SenderUser, assistant.Reply{Text: line})
		reply := engine.Respond(ctx, line, identity)
		cli.renderChatMessage(conversation.Append(assistant.SenderBot, reply))
	}
}
