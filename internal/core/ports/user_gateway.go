package ports

import (
	"context"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// UserGateway covers the admin user-management calls.
type UserGateway interface {
	ListAllUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// StatsGateway serves the homepage aggregate counters.
type StatsGateway interface {
	CampusStats(ctx context.Context) (*domain.CampusStats, error)
}
