package gateway

import (
	"context"
	"net/http"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// AuthGateway implements ports.AuthGateway.
type AuthGateway struct {
	client Requester
}

func NewAuthGateway(client Requester) *AuthGateway {
	return &AuthGateway{client: client}
}

func (g *AuthGateway) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	var auth domain.AuthResponse
	if err := g.client.Request(ctx, http.MethodPost, "/auth/login", creds, "", &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (g *AuthGateway) AuthenticatedUser(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := g.client.Request(ctx, http.MethodGet, "/user/me", nil, token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
