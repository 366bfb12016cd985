package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/ports"
)

// SessionStore is the explicit session lifecycle the auth service drives:
// load once at startup, save at login/registration, clear at logout. No
// screen reads ambient state; everything goes through this object.
type SessionStore interface {
	Current() (*domain.Identity, bool)
	Save(identity *domain.Identity) error
	Clear() error
}

// AuthService implements registration, login and logout for the client.
type AuthService struct {
	gateway  ports.AuthGateway
	sessions SessionStore
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewAuthService(gateway ports.AuthGateway, sessions SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{
		gateway:  gateway,
		sessions: sessions,
		validate: validator.New(),
		logger:   logger,
	}
}

// Register creates a new account. Registration does not log the user in;
// the flow mirrors the web client, which sends the user back to login.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.gateway.Register(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("registration failed")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return user, nil
}

// Login authenticates and persists the returned identity in the session
// store.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(identity); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", identity.ID).Str("role", identity.Role).Msg("logged in")
	return identity, nil
}

// Logout clears the stored identity. Safe to call when nobody is logged in.
func (s *AuthService) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		return err
	}
	s.logger.Info().Msg("logged out")
	return nil
}

// Current returns the stored identity, or ErrLoginRequired when the session
// is empty.
func (s *AuthService) Current() (*domain.Identity, error) {
	identity, ok := s.sessions.Current()
	if !ok {
		return nil, domain.ErrLoginRequired
	}
	return identity, nil
}
