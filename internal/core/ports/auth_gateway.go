package ports

import (
	"context"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=Student Admin"`
}

// AuthGateway issues the auth calls of the remote helpdesk API.
type AuthGateway interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login exchanges credentials for the user identity. The API returns no
	// token; the identity blob is all the client keeps.
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
}
