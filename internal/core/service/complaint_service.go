package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/ports"
)

// ComplaintService drives the complaint lifecycle against the remote API.
// It performs pre-flight validation only; the server owns all persistence
// and applies no transition guard of its own, so any status may follow any
// other.
type ComplaintService struct {
	gateway  ports.ComplaintGateway
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewComplaintService(gateway ports.ComplaintGateway, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{
		gateway:  gateway,
		validate: validator.New(),
		logger:   logger,
	}
}

// Submit files a new complaint. On success the complaint enters Pending on
// the server; callers refresh their listing to observe it rather than
// inserting locally.
func (s *ComplaintService) Submit(ctx context.Context, input ports.SubmitComplaintInput) (*domain.Complaint, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	created, err := s.gateway.Create(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to submit complaint")
		return nil, err
	}

	s.logger.Info().
		Str("complaint_id", created.ID).
		Str("type", string(created.Type)).
		Str("urgency", string(created.Urgency)).
		Msg("complaint submitted")
	return created, nil
}

// ListMine returns the owner's complaints in server order.
func (s *ComplaintService) ListMine(ctx context.Context, ownerID string) ([]domain.Complaint, error) {
	if ownerID == "" {
		return nil, domain.ErrLoginRequired
	}
	return s.gateway.ListByOwner(ctx, ownerID)
}

// ListAll returns every complaint with the submitter join. Admin only.
func (s *ComplaintService) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	return s.gateway.ListAll(ctx)
}

// Get resolves a single complaint from the owner's listing. The API exposes
// no GET-by-id endpoint, so the detail view filters the owner's own set.
func (s *ComplaintService) Get(ctx context.Context, ownerID, id string) (*domain.Complaint, error) {
	list, err := s.ListMine(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, domain.ErrComplaintNotFound
}

// SetStatus persists a new status with optional resolution note and admin
// feedback. Unknown status strings are rejected before any network call;
// beyond that every transition is allowed, matching observed server
// behavior. The caller reconciles any aggregate it holds (see the stats
// package) since the server pushes nothing back.
func (s *ComplaintService) SetStatus(ctx context.Context, id string, status domain.Status, extras ports.StatusExtras) (*domain.Complaint, error) {
	if !status.Known() {
		return nil, domain.ErrUnknownStatus
	}

	updated, err := s.gateway.UpdateStatus(ctx, id, status, extras)
	if err != nil {
		s.logger.Error().Err(err).Str("complaint_id", id).Msg("failed to update complaint status")
		return nil, err
	}

	s.logger.Info().Str("complaint_id", id).Str("status", string(status)).Msg("complaint status updated")
	return updated, nil
}

// Remove permanently deletes a complaint. Admin only.
func (s *ComplaintService) Remove(ctx context.Context, id string) error {
	if err := s.gateway.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("complaint_id", id).Msg("failed to delete complaint")
		return err
	}
	s.logger.Info().Str("complaint_id", id).Msg("complaint deleted")
	return nil
}
