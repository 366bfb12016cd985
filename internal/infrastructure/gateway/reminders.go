package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

type createReminderRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

func (c *Client) CreateReminder(ctx context.Context, userID, text string) (*domain.Reminder, error) {
	var created domain.Reminder
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createReminderRequest{UserID: userID, Text: text}).
		SetResult(&created).
		Post("/api/reminders")
	if err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("create reminder", resp)
	}
	return &created, nil
}

func (c *Client) ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error) {
	var list []domain.Reminder
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&list).
		Get("/api/reminders/" + url.PathEscape(userID))
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("list reminders", resp)
	}
	return list, nil
}

func (c *Client) ClearReminders(ctx context.Context, userID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/reminders/clear/" + url.PathEscape(userID))
	if err != nil {
		return fmt.Errorf("clear reminders: %w", err)
	}
	if resp.IsError() {
		return c.apiError("clear reminders", resp)
	}
	return nil
}
