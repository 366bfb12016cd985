package ports

import (
	"context"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// SubmitComplaintInput carries all data needed to file a new complaint.
// Type and Urgency are fixed once the complaint is created.
type SubmitComplaintInput struct {
	OwnerID     string          `json:"userId" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Type        domain.Category `json:"type" validate:"required,oneof=Academic Infrastructure Hostel Other"`
	Urgency     domain.Urgency  `json:"urgency" validate:"required,oneof=Low Medium High"`
}

// StatusExtras optionally accompanies a status change.
type StatusExtras struct {
	ResolutionNote string
	AdminFeedback  string
}

// ComplaintGateway issues the complaint calls of the remote helpdesk API.
// The server is the source of truth; no call below mutates local state.
type ComplaintGateway interface {
	Create(ctx context.Context, input SubmitComplaintInput) (*domain.Complaint, error)
	// ListByOwner returns the owner's complaints in server order. Callers
	// must not assume any ordering beyond what they sort themselves.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Complaint, error)
	// ListAll returns every complaint joined with submitter name/email.
	// Admin only.
	ListAll(ctx context.Context) ([]domain.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, extras StatusExtras) (*domain.Complaint, error)
	// Delete permanently removes a complaint. Admin only.
	Delete(ctx context.Context, id string) error
}
