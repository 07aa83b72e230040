package ports

import (
	"context"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// ProductGateway exposes the inventory API's product resource. Search is
// server-side, expressed through the name filter on FindAll's endpoint.
type ProductGateway interface {
	FindAll(ctx context.Context, token string, q domain.ListQuery) (*domain.Page[domain.Product], error)
	Search(ctx context.Context, token, name string) (*domain.Page[domain.Product], error)
	FindByID(ctx context.Context, token string, id int64) (*domain.Product, error)
	Create(ctx context.Context, token string, in domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, token string, id int64, in domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, token string, id int64) error
}
