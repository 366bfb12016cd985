package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/tracklyy/helpdesk-client/internal/core/assistant"
	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/stats"
)

// shortID renders the tail of a backend id the way tickets are referenced
// on screen: #A1B2.
func shortID(id string) string {
	if len(id) > 4 {
		id = id[len(id)-4:]
	}
	return strings.ToUpper(id)
}

func (cli *CLI) renderSummary(s stats.Summary) {
	fmt.Fprintf(cli.out, "Total %d | Pending %d | In Progress %d | Resolved %d\n",
		s.Total, s.Pending, s.InProgress, s.Resolved)
}

func (cli *CLI) renderComplaintTable(list []domain.Complaint, withSubmitter bool) {
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	if withSubmitter {
		fmt.Fprintln(w, "ID\tTITLE\tSTUDENT\tCATEGORY\tURGENCY\tSTATUS")
	} else {
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tURGENCY\tSTATUS")
	}

	for i := range list {
		c := &list[i]
		urgency := string(c.Urgency)
		if c.Urgency == domain.UrgencyHigh {
			urgency += " 🔥"
		}
		if withSubmitter {
			name := "Unknown"
			if c.Submitter != nil {
				name = c.Submitter.Name
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Title, name, c.Type, urgency, c.Status)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Title, c.Type, urgency, c.Status)
		}
	}
	_ = w.Flush()
}

func (cli *CLI) renderUserTable(users []domain.User) {
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tJOINED")
	for _, u := range users {
		role := u.Role
		if role == "" {
			role = domain.RoleStudent
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, role, u.CreatedAt.Format("02 Jan 2006"))
	}
	_ = w.Flush()
}

func (cli *CLI) renderChatMessage(msg assistant.Message) {
	label := "You"
	if msg.Sender == assistant.SenderBot {
		label = "Jaz"
	}

	if msg.Reply.IsList() {
		fmt.Fprintf(cli.out, "%s: %s\n", label, msg.Reply.Title)
		for _, item := range msg.Reply.Items {
			fmt.Fprintf(cli.out, "  - %s\n", item)
		}
		return
	}
	fmt.Fprintf(cli.out, "%s: %s\n", label, msg.Reply.Text)
}
