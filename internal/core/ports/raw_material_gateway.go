package ports

import (
	"context"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// RawMaterialGateway exposes the inventory API's raw-material resource.
// Implementations are thin pass-throughs over the transport and must
// propagate its normalized errors unchanged.
type RawMaterialGateway interface {
	FindAll(ctx context.Context, token string, q domain.ListQuery) (*domain.Page[domain.RawMaterial], error)
	Search(ctx context.Context, token, name string) ([]domain.RawMaterial, error)
	FindByID(ctx context.Context, token string, id int64) (*domain.RawMaterial, error)
	Create(ctx context.Context, token string, in domain.RawMaterialInput) (*domain.RawMaterial, error)
	Update(ctx context.Context, token string, id int64, in domain.RawMaterialInput) (*domain.RawMaterial, error)
	Delete(ctx context.Context, token string, id int64) error
}
