// Package gateway is the thin HTTP client wrapper over the remote helpdesk
// REST API. It is the only code that touches the wire; everything above it
// speaks the port interfaces.
package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/ports"
)

// Client implements every gateway port against a configured base URL.
// Requests are never retried; failures surface to the caller for display.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

var (
	_ ports.AuthGateway      = (*Client)(nil)
	_ ports.ComplaintGateway = (*Client)(nil)
	_ ports.ReminderGateway  = (*Client)(nil)
	_ ports.UserGateway      = (*Client)(nil)
	_ ports.StatsGateway     = (*Client)(nil)
)

func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, logger: logger}
}

type loginResponse struct {
	User domain.Identity `json:"user"`
}

func (c *Client) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	var user domain.User
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&user).
		Post("/api/auth/register")
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("register", resp)
	}
	return &user, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	body := map[string]string{"email": email, "password": password}

	var out loginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("login", resp)
	}
	return &out.User, nil
}

func (c *Client) Create(ctx context.Context, input ports.SubmitComplaintInput) (*domain.Complaint, error) {
	var created domain.Complaint
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&created).
		Post("/api/complaints")
	if err != nil {
		return nil, fmt.Errorf("create complaint: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("create complaint", resp)
	}
	return &created, nil
}

func (c *Client) ListByOwner(ctx context.Context, ownerID string) ([]domain.Complaint, error) {
	var list []domain.Complaint
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&list).
		Get("/api/complaints/my/" + url.PathEscape(ownerID))
	if err != nil {
		return nil, fmt.Errorf("list own complaints: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("list own complaints", resp)
	}
	return list, nil
}

func (c *Client) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	var list []domain.Complaint
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&list).
		Get("/api/complaints/all")
	if err != nil {
		return nil, fmt.Errorf("list all complaints: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("list all complaints", resp)
	}
	return list, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status domain.Status, extras ports.StatusExtras) (*domain.Complaint, error) {
	body := map[string]string{"status": string(status)}
	if extras.ResolutionNote != "" {
		body["resolutionNote"] = extras.ResolutionNote
	}
	if extras.AdminFeedback != "" {
		body["adminFeedback"] = extras.AdminFeedback
	}

	var updated domain.Complaint
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&updated).
		Put("/api/complaints/" + url.PathEscape(id) + "/status")
	if err != nil {
		return nil, fmt.Errorf("update complaint status: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("update complaint status", resp)
	}
	return &updated, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/complaints/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete complaint: %w", err)
	}
	if resp.IsError() {
		return c.apiError("delete complaint", resp)
	}
	return nil
}

func (c *Client) ListAllUsers(ctx context.Context) ([]domain.User, error) {
	var list []domain.User
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&list).
		Get("/api/users/all")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("list users", resp)
	}
	return list, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/users/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if resp.IsError() {
		return c.apiError("delete user", resp)
	}
	return nil
}

func (c *Client) CampusStats(ctx context.Context) (*domain.CampusStats, error) {
	var out domain.CampusStats
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/stats")
	if err != nil {
		return nil, fmt.Errorf("campus stats: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("campus stats", resp)
	}
	return &out, nil
}
