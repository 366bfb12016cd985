package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/ports"
	"github.com/tracklyy/helpdesk-client/internal/core/service"
)

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

type fakeSessions struct {
	identity *domain.Identity
}

func (s *fakeSessions) Current() (*domain.Identity, bool) { return s.identity, s.identity != nil }
func (s *fakeSessions) Save(i *domain.Identity) error     { s.identity = i; return nil }
func (s *fakeSessions) Clear() error                      { s.identity = nil; return nil }

type fakeAuthGateway struct {
	identity *domain.Identity
}

func (g *fakeAuthGateway) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	return &domain.User{ID: "u-new", Name: input.Name, Email: input.Email, Role: input.Role}, nil
}

func (g *fakeAuthGateway) Login(_ context.Context, _, _ string) (*domain.Identity, error) {
	return g.identity, nil
}

type fakeComplaintGateway struct {
	all     []domain.Complaint
	created []ports.SubmitComplaintInput
	updated []domain.Status
}

func (g *fakeComplaintGateway) Create(_ context.Context, input ports.SubmitComplaintInput) (*domain.Complaint, error) {
	g.created = append(g.created, input)
	return &domain.Complaint{ID: "c-new-0001", Title: input.Title, Type: input.Type, Urgency: input.Urgency, Status: domain.StatusPending}, nil
}

func (g *fakeComplaintGateway) ListByOwner(_ context.Context, ownerID string) ([]domain.Complaint, error) {
	var out []domain.Complaint
	for _, c := range g.all {
		if c.UserID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (g *fakeComplaintGateway) ListAll(_ context.Context) ([]domain.Complaint, error) {
	return g.all, nil
}

func (g *fakeComplaintGateway) UpdateStatus(_ context.Context, id string, status domain.Status, _ ports.StatusExtras) (*domain.Complaint, error) {
	g.updated = append(g.updated, status)
	return &domain.Complaint{ID: id, Status: status}, nil
}

func (g *fakeComplaintGateway) Delete(context.Context, string) error { return nil }

type fakeUserGateway struct{ deleted []string }

func (g *fakeUserGateway) ListAllUsers(context.Context) ([]domain.User, error) {
	return []domain.User{{ID: "u1", Name: "Alice Lee", Email: "alice@campus.edu", Role: domain.RoleStudent}}, nil
}

func (g *fakeUserGateway) DeleteUser(_ context.Context, id string) error {
	g.deleted = append(g.deleted, id)
	return nil
}

type fakeStatsGateway struct{}

func (fakeStatsGateway) CampusStats(context.Context) (*domain.CampusStats, error) {
	return &domain.CampusStats{TotalComplaints: 7, ResolvedComplaints: 3, RegisteredStudents: 42}, nil
}

type fakeReminderGateway struct{}

func (fakeReminderGateway) CreateReminder(_ context.Context, userID, text string) (*domain.Reminder, error) {
	return &domain.Reminder{ID: "r1", UserID: userID, Text: text}, nil
}
func (fakeReminderGateway) ListReminders(context.Context, string) ([]domain.Reminder, error) {
	return nil, nil
}
func (fakeReminderGateway) ClearReminders(context.Context, string) error { return nil }

type fixture struct {
	cli        *CLI
	out        *bytes.Buffer
	sessions   *fakeSessions
	complaints *fakeComplaintGateway
	users      *fakeUserGateway
}

func newFixture(identity *domain.Identity) *fixture {
	sessions := &fakeSessions{identity: identity}
	complaints := &fakeComplaintGateway{}
	users := &fakeUserGateway{}
	out := &bytes.Buffer{}

	auth := service.NewAuthService(&fakeAuthGateway{identity: identity}, sessions, zerolog.Nop())
	complaintSvc := service.NewComplaintService(complaints, zerolog.Nop())

	c := New(auth, complaintSvc, users, fakeStatsGateway{}, fakeReminderGateway{}, zerolog.Nop(), strings.NewReader(""), out)
	return &fixture{cli: c, out: out, sessions: sessions, complaints: complaints, users: users}
}

var (
	student = &domain.Identity{ID: "u1", Name: "Alice Lee", Email: "alice@campus.edu", Role: domain.RoleStudent}
	admin   = &domain.Identity{ID: "a1", Name: "Dean Rao", Email: "dean@campus.edu", Role: domain.RoleAdmin}
)

func run(t *testing.T, f *fixture, args ...string) error {
	t.Helper()
	return f.cli.Run(context.Background(), append([]string{"helpdesk"}, args...))
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestRunWithoutCommandPrintsUsage(t *testing.T) {
	f := newFixture(nil)

	err := run(t, f)
	if !IsHelp(err) {
		t.Fatalf("error = %v, want help", err)
	}
	if !strings.Contains(f.out.String(), "Usage: helpdesk") {
		t.Error("usage not printed")
	}
}

func TestUnknownCommandPrintsUsage(t *testing.T) {
	f := newFixture(nil)

	if err := run(t, f, "frobnicate"); !IsHelp(err) {
		t.Fatalf("error = %v, want help", err)
	}
}

func TestWhoamiRequiresLogin(t *testing.T) {
	f := newFixture(nil)

	err := run(t, f, "whoami")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("error = %v, want login hint", err)
	}
}

func TestWhoamiShowsIdentity(t *testing.T) {
	f := newFixture(student)

	if err := run(t, f, "whoami"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := f.out.String()
	for _, want := range []string{"Alice Lee", "alice@campus.edu", "Student"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestLoginPromptsForPassword(t *testing.T) {
	orig := readPasswordFunc
	readPasswordFunc = func(int) ([]byte, error) { return []byte("s3cret-pw"), nil }
	defer func() { readPasswordFunc = orig }()

	f := newFixture(nil)
	f.cli.auth = service.NewAuthService(&fakeAuthGateway{identity: student}, f.sessions, zerolog.Nop())

	if err := run(t, f, "login", "-email", "alice@campus.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved, ok := f.sessions.Current(); !ok || saved.ID != "u1" {
		t.Error("login did not persist the identity")
	}
	if !strings.Contains(f.out.String(), "Welcome back, Alice Lee") {
		t.Errorf("unexpected output:\n%s", f.out.String())
	}
}

func TestSubmitAssistNeedsDescription(t *testing.T) {
	f := newFixture(student)

	err := run(t, f, "submit", "-assist")
	if err == nil || !strings.Contains(err.Error(), "please enter a description first") {
		t.Fatalf("error = %v, want assist hint", err)
	}
	if len(f.complaints.created) != 0 {
		t.Error("complaint created despite missing description")
	}
}

func TestSubmitAssistDraftsFromDescription(t *testing.T) {
	f := newFixture(student)

	err := run(t, f, "submit", "-assist", "-desc", "The wifi in block C has been slow all week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.complaints.created) != 1 {
		t.Fatalf("expected 1 create, got %d", len(f.complaints.created))
	}
	input := f.complaints.created[0]
	if input.Type != domain.CategoryInfrastructure || input.Urgency != domain.UrgencyHigh {
		t.Errorf("draft not applied: %+v", input)
	}
	got := f.out.String()
	if !strings.Contains(got, "✨ Assistant draft:") {
		t.Errorf("draft line missing:\n%s", got)
	}
	if !strings.Contains(got, "Complaint submitted successfully! 🚀") {
		t.Errorf("confirmation missing:\n%s", got)
	}
}

func TestSubmitKeepsManualFieldsWithoutAssist(t *testing.T) {
	f := newFixture(student)

	err := run(t, f, "submit", "-title", "Projector broken", "-desc", "Room 201 projector flickers", "-category", "Infrastructure", "-urgency", "Low")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	input := f.complaints.created[0]
	if input.Title != "Projector broken" || input.Urgency != domain.UrgencyLow {
		t.Errorf("manual fields overridden: %+v", input)
	}
}

func TestAdminCommandsRejectStudents(t *testing.T) {
	f := newFixture(student)

	err := run(t, f, "admin", "complaints")
	if err == nil || !strings.Contains(err.Error(), "Admin account") {
		t.Fatalf("error = %v, want admin gate", err)
	}
}

func TestAdminComplaintsSortsAndFilters(t *testing.T) {
	f := newFixture(admin)
	f.complaints.all = []domain.Complaint{
		{ID: "aaaa1111", Title: "Low one", Status: domain.StatusPending, Urgency: domain.UrgencyLow},
		{ID: "bbbb2222", Title: "High one", Status: domain.StatusPending, Urgency: domain.UrgencyHigh},
		{ID: "cccc3333", Title: "Done one", Status: domain.StatusResolved, Urgency: domain.UrgencyMedium},
	}

	if err := run(t, f, "admin", "complaints", "-status", "Pending"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := f.out.String()
	if strings.Contains(got, "Done one") {
		t.Error("resolved complaint shown despite Pending filter")
	}
	if high, low := strings.Index(got, "High one"), strings.Index(got, "Low one"); high < 0 || low < 0 || high > low {
		t.Errorf("high urgency not listed first:\n%s", got)
	}
	if !strings.Contains(got, "Total 3 | Pending 2 | In Progress 0 | Resolved 1") {
		t.Errorf("summary missing or wrong:\n%s", got)
	}
}

func TestAdminSetStatusReconcilesSummaryWithoutRefetch(t *testing.T) {
	f := newFixture(admin)
	f.complaints.all = []domain.Complaint{
		{ID: "aaaa1111", Status: domain.StatusPending, Urgency: domain.UrgencyHigh},
		{ID: "bbbb2222", Status: domain.StatusPending, Urgency: domain.UrgencyLow},
	}

	if err := run(t, f, "admin", "setstatus", "-id", "aaaa1111", "-status", "Resolved"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := f.out.String()
	if !strings.Contains(got, "Pending → Resolved") {
		t.Errorf("transition line missing:\n%s", got)
	}
	// The snapshot said 2 Pending; the summary is adjusted locally, so the
	// stale gateway list must not leak through.
	if !strings.Contains(got, "Total 2 | Pending 1 | In Progress 0 | Resolved 1") {
		t.Errorf("summary not reconciled:\n%s", got)
	}
	if len(f.complaints.updated) != 1 || f.complaints.updated[0] != domain.StatusResolved {
		t.Errorf("unexpected update calls: %v", f.complaints.updated)
	}
}

func TestAdminSetStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture(admin)
	f.complaints.all = []domain.Complaint{{ID: "aaaa1111", Status: domain.StatusPending}}

	if err := run(t, f, "admin", "setstatus", "-id", "aaaa1111", "-status", "Escalated"); err == nil {
		t.Fatal("expected unknown status to be rejected")
	}
	if len(f.complaints.updated) != 0 {
		t.Error("gateway reached for unknown status")
	}
}

func TestStatsCommand(t *testing.T) {
	f := newFixture(student)

	if err := run(t, f, "stats"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(f.out.String(), "7 complaints, 3 resolved, 42 registered students") {
		t.Errorf("unexpected output:\n%s", f.out.String())
	}
}
