package ports

import (
	"context"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// UserCache is a short-lived token→user lookup cache consulted by the
// session-check handler before probing the upstream API. A nil or failing
// cache must degrade to a miss, never block the session check.
type UserCache interface {
	Get(ctx context.Context, token string) (*domain.User, bool, error)
	Set(ctx context.Context, token string, user *domain.User) error
	Invalidate(ctx context.Context, token string) error
}
