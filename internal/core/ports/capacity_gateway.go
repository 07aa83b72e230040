package ports

import (
	"context"

	"github.com/naiconmartins/autoflex-production-control/internal/core/domain"
)

// CapacityGateway fetches the server-computed production-capacity report.
type CapacityGateway interface {
	Report(ctx context.Context, token string) (*domain.CapacityReport, error)
}
