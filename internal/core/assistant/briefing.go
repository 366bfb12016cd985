package assistant

import (
	"fmt"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// TicketBriefing produces the canned per-ticket timeline shown on the
// complaint detail screen: receipt, resolution estimate, a priority
// acknowledgement for High urgency, and a closing line keyed to the current
// status. Pure; the lines are generated, not persisted.
func TicketBriefing(identity *domain.Identity, c *domain.Complaint) []string {
	name := "there"
	if identity != nil && identity.FirstName() != "" {
		name = identity.FirstName()
	}

	estimate := "24-48 hours"
	if c.Urgency == domain.UrgencyHigh {
		estimate = "2-4 hours (Priority Handling)"
	}

	lines := []string{
		fmt.Sprintf("👋 Hi %s! I've received your complaint regarding %q.", name, c.Title),
		fmt.Sprintf("🕒 Based on the category (%s), the estimated resolution time is %s.", c.Type, estimate),
	}

	if c.Urgency == domain.UrgencyHigh {
		lines = append(lines, "🚨 I see you marked this as HIGH Priority. I have instantly notified the Admin dashboard with a red alert tag.")
	}

	switch c.Status {
	case domain.StatusInProgress:
		lines = append(lines, `👷 GOOD NEWS: An Admin has seen your ticket and marked it "In Progress". They are working on it right now.`)
	case domain.StatusResolved:
		lines = append(lines, "✅ GREAT NEWS: Your issue has been marked as RESOLVED! Please check if everything is working fine now.")
	default:
		lines = append(lines, `🧑‍💼 Your ticket is currently in the "Pending" queue. I will ping you as soon as an Admin opens it.`)
	}

	return lines
}
