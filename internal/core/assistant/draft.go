package assistant

import (
	"strings"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// Draft is a suggested prefill for the new-complaint form.
type Draft struct {
	Title    string
	Category domain.Category
	Urgency  domain.Urgency
}

// SuggestDraft derives a complaint title, category and urgency from the
// free-text description, using the same keyword heuristic the submission
// screen brands as AI assist. Pure; callers decide whether to keep the
// suggestion.
func SuggestDraft(description string) Draft {
	desc := strings.ToLower(description)

	switch {
	case strings.Contains(desc, "wifi"), strings.Contains(desc, "net"), strings.Contains(desc, "slow"):
		return Draft{
			Title:    "Network Connectivity Issue",
			Category: domain.CategoryInfrastructure,
			Urgency:  domain.UrgencyHigh,
		}
	case strings.Contains(desc, "food"), strings.Contains(desc, "mess"), strings.Contains(desc, "water"):
		return Draft{
			Title:    "Hostel/Mess Quality Concern",
			Category: domain.CategoryHostel,
			Urgency:  domain.UrgencyHigh,
		}
	case strings.Contains(desc, "grade"), strings.Contains(desc, "exam"), strings.Contains(desc, "class"):
		return Draft{
			Title:    "Academic Query / Grading Issue",
			Category: domain.CategoryAcademic,
			Urgency:  domain.UrgencyMedium,
		}
	}
	return Draft{
		Title:    "Issue Reported",
		Category: domain.CategoryOther,
		Urgency:  domain.UrgencyMedium,
	}
}
