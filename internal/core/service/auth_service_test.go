package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/ports"
)

type stubAuthGateway struct {
	registerCalls []ports.RegisterInput
	loginIdentity *domain.Identity
	loginErr      error
}

func (g *stubAuthGateway) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	g.registerCalls = append(g.registerCalls, input)
	return &domain.User{ID: "u-new", Name: input.Name, Email: input.Email, Role: input.Role}, nil
}

func (g *stubAuthGateway) Login(_ context.Context, _, _ string) (*domain.Identity, error) {
	if g.loginErr != nil {
		return nil, g.loginErr
	}
	return g.loginIdentity, nil
}

type memorySessionStore struct {
	identity *domain.Identity
	saveErr  error
}

func (s *memorySessionStore) Current() (*domain.Identity, bool) { return s.identity, s.identity != nil }

func (s *memorySessionStore) Save(identity *domain.Identity) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.identity = identity
	return nil
}

func (s *memorySessionStore) Clear() error {
	s.identity = nil
	return nil
}

func validRegister() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Alice Lee",
		Email:    "alice@campus.edu",
		Password: "s3cret-pw",
		Role:     domain.RoleStudent,
	}
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	gateway := &stubAuthGateway{}
	sessions := &memorySessionStore{}
	svc := NewAuthService(gateway, sessions, zerolog.Nop())

	user, err := svc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected created user id")
	}
	if _, ok := sessions.Current(); ok {
		t.Error("registration must not create a session")
	}
}

func TestRegisterValidatesBeforeNetwork(t *testing.T) {
	gateway := &stubAuthGateway{}
	svc := NewAuthService(gateway, &memorySessionStore{}, zerolog.Nop())

	tests := []struct {
		name   string
		mutate func(*ports.RegisterInput)
	}{
		{"empty name", func(in *ports.RegisterInput) { in.Name = "" }},
		{"malformed email", func(in *ports.RegisterInput) { in.Email = "not-an-email" }},
		{"short password", func(in *ports.RegisterInput) { in.Password = "abc" }},
		{"unknown role", func(in *ports.RegisterInput) { in.Role = "Dean" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegister()
			tt.mutate(&input)
			if _, err := svc.Register(context.Background(), input); err == nil {
				t.Error("expected validation error")
			}
		})
	}
	if len(gateway.registerCalls) != 0 {
		t.Errorf("gateway called %d times for invalid input", len(gateway.registerCalls))
	}
}

func TestLoginSavesIdentity(t *testing.T) {
	identity := &domain.Identity{ID: "u1", Name: "Alice Lee", Role: domain.RoleStudent}
	gateway := &stubAuthGateway{loginIdentity: identity}
	sessions := &memorySessionStore{}
	svc := NewAuthService(gateway, sessions, zerolog.Nop())

	got, err := svc.Login(context.Background(), "alice@campus.edu", "s3cret-pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "u1" {
		t.Errorf("identity id = %q, want u1", got.ID)
	}
	saved, ok := sessions.Current()
	if !ok || saved.ID != "u1" {
		t.Errorf("session not saved: %+v ok=%v", saved, ok)
	}
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	svc := NewAuthService(&stubAuthGateway{}, &memorySessionStore{}, zerolog.Nop())

	for _, pair := range [][2]string{{"", "pw"}, {"alice@campus.edu", ""}, {"", ""}} {
		if _, err := svc.Login(context.Background(), pair[0], pair[1]); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) error = %v, want ErrInvalidCredentials", pair[0], pair[1], err)
		}
	}
}

func TestLoginPropagatesGatewayError(t *testing.T) {
	gateway := &stubAuthGateway{loginErr: domain.ErrInvalidCredentials}
	sessions := &memorySessionStore{}
	svc := NewAuthService(gateway, sessions, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "alice@campus.edu", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
	if _, ok := sessions.Current(); ok {
		t.Error("failed login must not save a session")
	}
}

func TestLoginFailsWhenSessionCannotBeSaved(t *testing.T) {
	gateway := &stubAuthGateway{loginIdentity: &domain.Identity{ID: "u1"}}
	sessions := &memorySessionStore{saveErr: errors.New("disk full")}
	svc := NewAuthService(gateway, sessions, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "alice@campus.edu", "s3cret-pw"); err == nil {
		t.Error("expected save error to surface")
	}
}

func TestLogoutAndCurrent(t *testing.T) {
	sessions := &memorySessionStore{identity: &domain.Identity{ID: "u1"}}
	svc := NewAuthService(&stubAuthGateway{}, sessions, zerolog.Nop())

	identity, err := svc.Current()
	if err != nil || identity.ID != "u1" {
		t.Fatalf("Current() = %+v, %v", identity, err)
	}

	if err := svc.Logout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Current(); !errors.Is(err, domain.ErrLoginRequired) {
		t.Errorf("error after logout = %v, want ErrLoginRequired", err)
	}

	// Logging out twice is not an error.
	if err := svc.Logout(); err != nil {
		t.Errorf("second logout: %v", err)
	}
}
