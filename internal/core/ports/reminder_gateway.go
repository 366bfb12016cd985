package ports

import (
	"context"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// ReminderGateway persists assistant-managed reminders. The assistant is the
// only producer; reminders have no state beyond existence.
type ReminderGateway interface {
	CreateReminder(ctx context.Context, userID, text string) (*domain.Reminder, error)
	ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error)
	ClearReminders(ctx context.Context, userID string) error
}
