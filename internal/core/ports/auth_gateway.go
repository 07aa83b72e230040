package ports

import (
	"context"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// AuthGateway exposes the inventory API's authentication endpoints.
type AuthGateway interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error)
	AuthenticatedUser(ctx context.Context, token string) (*domain.User, error)
}
