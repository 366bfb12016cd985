package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub gateway
// ---------------------------------------------------------------------------

type stubComplaintGateway struct {
	byOwner map[string][]domain.Complaint
	all     []domain.Complaint

	createCalls []ports.SubmitComplaintInput
	updateCalls int
	deleteCalls []string

	failWith error // if set, every call fails with it
}

func newStubComplaintGateway() *stubComplaintGateway {
	return &stubComplaintGateway{byOwner: make(map[string][]domain.Complaint)}
}

func (g *stubComplaintGateway) Create(_ context.Context, input ports.SubmitComplaintInput) (*domain.Complaint, error) {
	if g.failWith != nil {
		return nil, g.failWith
	}
	g.createCalls = append(g.createCalls, input)
	created := domain.Complaint{
		ID:          "c-new",
		UserID:      input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Urgency:     input.Urgency,
		Status:      domain.StatusPending, // server assigns the initial state
	}
	return &created, nil
}

func (g *stubComplaintGateway) ListByOwner(_ context.Context, ownerID string) ([]domain.Complaint, error) {
	if g.failWith != nil {
		return nil, g.failWith
	}
	return g.byOwner[ownerID], nil
}

func (g *stubComplaintGateway) ListAll(_ context.Context) ([]domain.Complaint, error) {
	if g.failWith != nil {
		return nil, g.failWith
	}
	return g.all, nil
}

func (g *stubComplaintGateway) UpdateStatus(_ context.Context, id string, status domain.Status, extras ports.StatusExtras) (*domain.Complaint, error) {
	if g.failWith != nil {
		return nil, g.failWith
	}
	g.updateCalls++
	return &domain.Complaint{ID: id, Status: status, ResolutionNote: extras.ResolutionNote, AdminFeedback: extras.AdminFeedback}, nil
}

func (g *stubComplaintGateway) Delete(_ context.Context, id string) error {
	if g.failWith != nil {
		return g.failWith
	}
	g.deleteCalls = append(g.deleteCalls, id)
	return nil
}

func newTestComplaintService(g *stubComplaintGateway) *ComplaintService {
	return NewComplaintService(g, zerolog.Nop())
}

func validSubmit() ports.SubmitComplaintInput {
	return ports.SubmitComplaintInput{
		OwnerID:     "u1",
		Title:       "Broken fan",
		Description: "Ceiling fan in room 12 does not turn on",
		Type:        domain.CategoryHostel,
		Urgency:     domain.UrgencyMedium,
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestSubmitCreatesPendingComplaint(t *testing.T) {
	g := newStubComplaintGateway()
	svc := newTestComplaintService(g)

	created, err := svc.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != domain.StatusPending {
		t.Errorf("new complaint status = %q, want %q", created.Status, domain.StatusPending)
	}
	if len(g.createCalls) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(g.createCalls))
	}
}

func TestSubmitRejectsInvalidInputBeforeNetwork(t *testing.T) {
	g := newStubComplaintGateway()
	svc := newTestComplaintService(g)

	tests := []struct {
		name   string
		mutate func(*ports.SubmitComplaintInput)
	}{
		{"missing title", func(in *ports.SubmitComplaintInput) { in.Title = "" }},
		{"missing description", func(in *ports.SubmitComplaintInput) { in.Description = "" }},
		{"bad category", func(in *ports.SubmitComplaintInput) { in.Type = "Parking" }},
		{"bad urgency", func(in *ports.SubmitComplaintInput) { in.Urgency = "Critical" }},
		{"missing owner", func(in *ports.SubmitComplaintInput) { in.OwnerID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSubmit()
			tt.mutate(&input)
			if _, err := svc.Submit(context.Background(), input); err == nil {
				t.Error("expected validation error")
			}
		})
	}
	if len(g.createCalls) != 0 {
		t.Errorf("gateway called %d times for invalid input", len(g.createCalls))
	}
}

func TestListMineRequiresOwner(t *testing.T) {
	svc := newTestComplaintService(newStubComplaintGateway())

	if _, err := svc.ListMine(context.Background(), ""); !errors.Is(err, domain.ErrLoginRequired) {
		t.Errorf("error = %v, want ErrLoginRequired", err)
	}
}

func TestListMinePreservesServerOrder(t *testing.T) {
	g := newStubComplaintGateway()
	g.byOwner["u1"] = []domain.Complaint{{ID: "z"}, {ID: "a"}, {ID: "m"}}
	svc := newTestComplaintService(g)

	list, err := svc.ListMine(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []string{"z", "a", "m"} {
		if list[i].ID != want {
			t.Errorf("list[%d] = %q, want %q (server order must be preserved)", i, list[i].ID, want)
		}
	}
}

func TestGetFindsOwnComplaint(t *testing.T) {
	g := newStubComplaintGateway()
	g.byOwner["u1"] = []domain.Complaint{{ID: "c1"}, {ID: "c2"}}
	svc := newTestComplaintService(g)

	c, err := svc.Get(context.Background(), "u1", "c2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "c2" {
		t.Errorf("got %q, want c2", c.ID)
	}

	if _, err := svc.Get(context.Background(), "u1", "nope"); !errors.Is(err, domain.ErrComplaintNotFound) {
		t.Errorf("error = %v, want ErrComplaintNotFound", err)
	}
}

func TestSetStatusAllowsAnyKnownTransition(t *testing.T) {
	g := newStubComplaintGateway()
	svc := newTestComplaintService(g)

	// No transition guard exists: Resolved back to Pending is legal.
	updated, err := svc.SetStatus(context.Background(), "c1", domain.StatusPending, ports.StatusExtras{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.StatusPending {
		t.Errorf("status = %q, want Pending", updated.Status)
	}
}

func TestSetStatusRejectsUnknownStatusBeforeNetwork(t *testing.T) {
	g := newStubComplaintGateway()
	svc := newTestComplaintService(g)

	_, err := svc.SetStatus(context.Background(), "c1", "Escalated", ports.StatusExtras{})
	if !errors.Is(err, domain.ErrUnknownStatus) {
		t.Fatalf("error = %v, want ErrUnknownStatus", err)
	}
	if g.updateCalls != 0 {
		t.Errorf("gateway called for unknown status")
	}
}

func TestSetStatusCarriesExtras(t *testing.T) {
	g := newStubComplaintGateway()
	svc := newTestComplaintService(g)

	updated, err := svc.SetStatus(context.Background(), "c1", domain.StatusResolved, ports.StatusExtras{
		ResolutionNote: "replaced router",
		AdminFeedback:  "thanks for reporting",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ResolutionNote != "replaced router" || updated.AdminFeedback != "thanks for reporting" {
		t.Errorf("extras not carried: %+v", updated)
	}
}

func TestRemovePropagatesGatewayError(t *testing.T) {
	g := newStubComplaintGateway()
	g.failWith = errors.New("backend unreachable")
	svc := newTestComplaintService(g)

	if err := svc.Remove(context.Background(), "c1"); err == nil {
		t.Error("expected error to propagate for manual retry")
	}
}
